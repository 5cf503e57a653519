package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_repo.go -package=mocks github.com/codeflix-tube/admin-catalog/internal/services VideoRepo
//go:generate go run github.com/golang/mock/mockgen -destination=mock_category_existence.go -package=mocks github.com/codeflix-tube/admin-catalog/internal/services CategoryExistence
//go:generate go run github.com/golang/mock/mockgen -destination=mock_genre_existence.go -package=mocks github.com/codeflix-tube/admin-catalog/internal/services GenreExistence
//go:generate go run github.com/golang/mock/mockgen -destination=mock_cast_member_existence.go -package=mocks github.com/codeflix-tube/admin-catalog/internal/services CastMemberExistence
//go:generate go run github.com/golang/mock/mockgen -destination=mock_media_storage.go -package=mocks github.com/codeflix-tube/admin-catalog/internal/services MediaStorage
//go:generate go run github.com/golang/mock/mockgen -destination=mock_outbox_enqueuer.go -package=mocks github.com/codeflix-tube/admin-catalog/internal/services OutboxEnqueuer
