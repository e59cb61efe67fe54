package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSet     CommandType = "set"
	CmdSetName CommandType = "setname"
	CmdList    CommandType = "list"
	CmdCollect CommandType = "collect"
	CmdPost    CommandType = "post"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "set":
		cmd.Type = CmdSet
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "setname", "set-name":
		cmd.Type = CmdSetName
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "collect":
		cmd.Type = CmdCollect
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "post":
		cmd.Type = CmdPost
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Birthdays:*
• ` + "`/birthday set DD-MM`" + ` - Set your own birthday (e.g. 08-06)
• ` + "`/birthday set @user DD-MM`" + ` - Set a colleague's birthday
• ` + "`/birthday setname First Last DD-MM`" + ` - Set a birthday by name
• ` + "`/birthday list`" + ` - List all known birthdays

*Celebrations:*
• ` + "`/birthday collect @user`" + ` - Ask colleagues for tribute messages now
• ` + "`/birthday post @user`" + ` - Post the celebration thread now`
}
