package repositories_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestVideoRepositoryIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	defer terminate()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)

	logger := log.NewStdLogger(io.Discard)
	repo := repositories.NewVideoRepository(pool, logger)

	categoryID := insertNamedRow(ctx, t, pool, "catalog.categories", "Documentary")
	genreID := insertNamedRow(ctx, t, pool, "catalog.genres", "Science")
	castMemberID := insertNamedRow(ctx, t, pool, "catalog.cast_members", "Ana Souza")

	year := int32(2022)
	video := po.NewVideo(
		"Deep Dive into Databases",
		"Storage engines, indexes and transactions",
		&year,
		120.5,
		true,
		false,
		po.Rating12,
		po.NewIDSet(categoryID),
		po.NewIDSet(genreID),
		po.NewIDSet(castMemberID),
	)
	rawMedia := po.NewAudioVideoMedia("chk-video", "lecture.mp4", "videos/raw/lecture.mp4")
	video.SetVideo(rawMedia)
	video.SetBanner(po.NewImageMedia("chk-banner", "banner.png", "images/banner.png"))
	video.ClearEvents()

	t.Run("CreateAndFindRoundTrip", func(t *testing.T) {
		_, err := repo.Create(ctx, nil, video)
		require.NoError(t, err)

		loaded, err := repo.FindByID(ctx, nil, video.ID)
		require.NoError(t, err)
		require.Equal(t, video.ID, loaded.ID)
		require.Equal(t, video.Title, loaded.Title)
		require.Equal(t, video.Description, loaded.Description)
		require.NotNil(t, loaded.LaunchedAt)
		require.Equal(t, year, *loaded.LaunchedAt)
		require.Equal(t, video.Duration, loaded.Duration)
		require.True(t, loaded.Opened)
		require.False(t, loaded.Published)
		require.Equal(t, po.Rating12, loaded.Rating)

		require.True(t, loaded.Categories.Contains(categoryID))
		require.True(t, loaded.Genres.Contains(genreID))
		require.True(t, loaded.CastMembers.Contains(castMemberID))

		require.NotNil(t, loaded.Video)
		require.Equal(t, rawMedia.ID, loaded.Video.ID)
		require.Equal(t, "chk-video", loaded.Video.Checksum)
		require.Equal(t, "videos/raw/lecture.mp4", loaded.Video.RawLocation)
		require.Equal(t, po.MediaStatusPending, loaded.Video.Status)
		require.Nil(t, loaded.Trailer)
		require.NotNil(t, loaded.Banner)
		require.Equal(t, "images/banner.png", loaded.Banner.Location)
		require.Nil(t, loaded.Thumbnail)
		require.Nil(t, loaded.ThumbnailHalf)

		require.WithinDuration(t, video.CreatedAt, loaded.CreatedAt, time.Millisecond)
		require.WithinDuration(t, video.UpdatedAt, loaded.UpdatedAt, time.Millisecond)
	})

	t.Run("UpdateOverwritesAggregateState", func(t *testing.T) {
		matched := video.AdvanceMedia(rawMedia.ID, po.MediaStatusCompleted, "videos/encoded/master.m3u8")
		require.True(t, matched)

		video.Update(
			"Deep Dive into Databases, 2nd ed.",
			"Now with distributed transactions",
			&year,
			130,
			false,
			true,
			po.Rating16,
			po.NewIDSet(categoryID),
			nil,
			nil,
		)

		_, err := repo.Update(ctx, nil, video)
		require.NoError(t, err)

		loaded, err := repo.FindByID(ctx, nil, video.ID)
		require.NoError(t, err)
		require.Equal(t, "Deep Dive into Databases, 2nd ed.", loaded.Title)
		require.Equal(t, po.Rating16, loaded.Rating)
		require.False(t, loaded.Opened)
		require.True(t, loaded.Published)
		require.Equal(t, 0, loaded.Genres.Len())
		require.Equal(t, 0, loaded.CastMembers.Len())
		require.NotNil(t, loaded.Video)
		require.Equal(t, po.MediaStatusCompleted, loaded.Video.Status)
		require.Equal(t, "videos/encoded/master.m3u8", loaded.Video.EncodedLocation)
	})

	t.Run("UndefinedRatingStoredAsNull", func(t *testing.T) {
		noRating := po.NewVideo("Untitled Draft", "placeholder", &year, 10, false, false, "", nil, nil, nil)
		_, err := repo.Create(ctx, nil, noRating)
		require.NoError(t, err)

		var stored *string
		err = pool.QueryRow(ctx, `SELECT rating FROM catalog.videos WHERE id = $1`, noRating.ID).Scan(&stored)
		require.NoError(t, err)
		require.Nil(t, stored)

		loaded, err := repo.FindByID(ctx, nil, noRating.ID)
		require.NoError(t, err)
		require.False(t, loaded.Rating.Defined())
	})

	t.Run("DeleteRemovesRow", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, nil, video.ID))

		_, err := repo.FindByID(ctx, nil, video.ID)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)

		err = repo.Delete(ctx, nil, video.ID)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("UpdateMissingVideoReturnsNotFound", func(t *testing.T) {
		ghost := po.NewVideo("Ghost", "never persisted", &year, 5, false, false, po.RatingL, nil, nil, nil)
		_, err := repo.Update(ctx, nil, ghost)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})
}

func TestExistenceRepositoriesIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	defer terminate()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)

	logger := log.NewStdLogger(io.Discard)
	categories := repositories.NewCategoryRepository(pool, logger)
	genres := repositories.NewGenreRepository(pool, logger)
	castMembers := repositories.NewCastMemberRepository(pool, logger)

	knownCategory := insertNamedRow(ctx, t, pool, "catalog.categories", "Movies")
	otherCategory := insertNamedRow(ctx, t, pool, "catalog.categories", "Series")
	knownGenre := insertNamedRow(ctx, t, pool, "catalog.genres", "Drama")
	knownCastMember := insertNamedRow(ctx, t, pool, "catalog.cast_members", "João Lima")

	unknown := uuid.New()

	found, err := categories.ExistsByIDs(ctx, nil, []uuid.UUID{knownCategory, unknown, otherCategory})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{knownCategory, otherCategory}, found)

	found, err = genres.ExistsByIDs(ctx, nil, []uuid.UUID{knownGenre, unknown})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{knownGenre}, found)

	found, err = castMembers.ExistsByIDs(ctx, nil, []uuid.UUID{unknown})
	require.NoError(t, err)
	require.Empty(t, found)

	found, err = castMembers.ExistsByIDs(ctx, nil, []uuid.UUID{knownCastMember, knownCastMember})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{knownCastMember}, found)

	found, err = categories.ExistsByIDs(ctx, nil, nil)
	require.NoError(t, err)
	require.Empty(t, found)
}

func insertNamedRow(ctx context.Context, t *testing.T, pool *pgxpool.Pool, table, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(ctx, `INSERT INTO `+table+` (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}
