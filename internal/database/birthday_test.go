package database

import (
	"testing"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthdayRepo_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newBirthdayRepo(db.conn)

	t.Run("should create birthday successfully", func(t *testing.T) {
		err := repo.Upsert("U123456789", "08-06")
		require.NoError(t, err)

		birthday, err := repo.Get("U123456789")
		require.NoError(t, err)
		require.NotNil(t, birthday)
		assert.Equal(t, "U123456789", birthday.MemberID)
		assert.Equal(t, "08-06", birthday.BirthDate)
		assert.Nil(t, birthday.NotifiedAt)
		assert.True(t, birthday.HasKnownDate())
	})

	t.Run("should overwrite existing date instead of duplicating", func(t *testing.T) {
		err := repo.Upsert("U123456789", "25-12")
		require.NoError(t, err)

		birthday, err := repo.Get("U123456789")
		require.NoError(t, err)
		require.NotNil(t, birthday)
		assert.Equal(t, "25-12", birthday.BirthDate)

		birthdays, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, birthdays, 1)
	})

	t.Run("should store placeholder and reset bookkeeping when date is empty", func(t *testing.T) {
		err := repo.Upsert("U987654321", "01-06")
		require.NoError(t, err)

		err = repo.SetNotifiedAt("U987654321", time.Now().UTC())
		require.NoError(t, err)

		err = repo.Upsert("U987654321", "")
		require.NoError(t, err)

		birthday, err := repo.Get("U987654321")
		require.NoError(t, err)
		require.NotNil(t, birthday)
		assert.Equal(t, domain.PlaceholderDate, birthday.BirthDate)
		assert.Nil(t, birthday.NotifiedAt)
		assert.False(t, birthday.HasKnownDate())
	})
}

func TestBirthdayRepo_EnsurePlaceholder(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newBirthdayRepo(db.conn)

	t.Run("should create placeholder for unknown member", func(t *testing.T) {
		err := repo.EnsurePlaceholder("U111111111")
		require.NoError(t, err)

		birthday, err := repo.Get("U111111111")
		require.NoError(t, err)
		require.NotNil(t, birthday)
		assert.Equal(t, domain.PlaceholderDate, birthday.BirthDate)
	})

	t.Run("should not touch an existing record", func(t *testing.T) {
		err := repo.Upsert("U222222222", "15-03")
		require.NoError(t, err)

		err = repo.EnsurePlaceholder("U222222222")
		require.NoError(t, err)

		birthday, err := repo.Get("U222222222")
		require.NoError(t, err)
		require.NotNil(t, birthday)
		assert.Equal(t, "15-03", birthday.BirthDate)
	})
}

func TestBirthdayRepo_Exists(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newBirthdayRepo(db.conn)

	exists, err := repo.Exists("U123456789")
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Upsert("U123456789", "08-06")
	require.NoError(t, err)

	exists, err = repo.Exists("U123456789")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBirthdayRepo_Get(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newBirthdayRepo(db.conn)

	t.Run("should return nil when member not found", func(t *testing.T) {
		birthday, err := repo.Get("U999999999")
		require.NoError(t, err)
		assert.Nil(t, birthday)
	})

	t.Run("should return notified at once set", func(t *testing.T) {
		err := repo.Upsert("U123456789", "08-06")
		require.NoError(t, err)

		notifiedAt := time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC)
		err = repo.SetNotifiedAt("U123456789", notifiedAt)
		require.NoError(t, err)

		birthday, err := repo.Get("U123456789")
		require.NoError(t, err)
		require.NotNil(t, birthday)
		require.NotNil(t, birthday.NotifiedAt)
		assert.True(t, birthday.NotifiedAt.Equal(notifiedAt))
	})
}

func TestBirthdayRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	birthdayRepo := newBirthdayRepo(db.conn)
	tributeRepo := newTributeRepo(db.conn)
	descriptionRepo := newDescriptionRepo(db.conn)

	err := birthdayRepo.Upsert("U123456789", "08-06")
	require.NoError(t, err)

	inserted, err := tributeRepo.Add(tributeFixture("U123456789", "U111111111", "Happy birthday!"))
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = descriptionRepo.Add(descriptionFixture("U123456789", "U111111111", "Always helpful"))
	require.NoError(t, err)
	require.True(t, inserted)

	err = birthdayRepo.Delete("U123456789")
	require.NoError(t, err)

	birthday, err := birthdayRepo.Get("U123456789")
	require.NoError(t, err)
	assert.Nil(t, birthday)

	// Cascade removes the member's tributes and descriptions.
	tributes, err := tributeRepo.ListUndelivered("U123456789")
	require.NoError(t, err)
	assert.Empty(t, tributes)

	descriptions, err := descriptionRepo.ListUndelivered("U123456789")
	require.NoError(t, err)
	assert.Empty(t, descriptions)
}
