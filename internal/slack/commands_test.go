package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse set with a date",
			text:     "set 08-06",
			wantType: CmdSet,
			wantArgs: []string{"08-06"},
		},
		{
			name:     "Should parse set with a mention and date",
			text:     "set <@U123456|john> 08-06",
			wantType: CmdSet,
			wantArgs: []string{"<@U123456|john>", "08-06"},
		},
		{
			name:     "Should parse setname with both spellings",
			text:     "set-name Jane Doe 25-12",
			wantType: CmdSetName,
			wantArgs: []string{"Jane", "Doe", "25-12"},
		},
		{
			name:     "Should parse list",
			text:     "list",
			wantType: CmdList,
		},
		{
			name:     "Should parse the ls alias",
			text:     "ls",
			wantType: CmdList,
		},
		{
			name:     "Should parse collect with a mention",
			text:     "collect <@U123456>",
			wantType: CmdCollect,
			wantArgs: []string{"<@U123456>"},
		},
		{
			name:     "Should parse post with a mention",
			text:     "post <@U123456>",
			wantType: CmdPost,
			wantArgs: []string{"<@U123456>"},
		},
		{
			name:     "Should default empty input to help",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:     "Should parse help",
			text:     "help",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject an unknown command",
			text:    "celebrate",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/birthday set DD-MM")
	assert.Contains(t, help, "/birthday setname")
	assert.Contains(t, help, "/birthday list")
	assert.Contains(t, help, "/birthday collect")
	assert.Contains(t, help, "/birthday post")
}
