// Package mocks provides gomock implementations of the store interfaces the
// services depend on.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	jobs := mocks.NewMockJobStore(ctrl)
//	jobs.EXPECT().GetByID(gomock.Any(), int64(1)).Return(job, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_store_mock.go github.com/yigit/jobsearch/internal/app/services UserStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=refresh_token_store_mock.go github.com/yigit/jobsearch/internal/app/services RefreshTokenStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=api_token_store_mock.go github.com/yigit/jobsearch/internal/app/services APITokenStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=organization_store_mock.go github.com/yigit/jobsearch/internal/app/services OrganizationStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=degree_store_mock.go github.com/yigit/jobsearch/internal/app/services DegreeStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=location_store_mock.go github.com/yigit/jobsearch/internal/app/services LocationStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=spotlight_store_mock.go github.com/yigit/jobsearch/internal/app/services SpotlightStore

// Job persistence, indexing and search.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_store_mock.go github.com/yigit/jobsearch/internal/app/services JobStore
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_indexer_mock.go github.com/yigit/jobsearch/internal/app/services JobIndexer
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_searcher_mock.go github.com/yigit/jobsearch/internal/app/services JobSearcher
