package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobsearch/internal/app/auth"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/mocks"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"go.uber.org/mock/gomock"
)

func TestOrganizationService_CreatorOnlyWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationStore(ctrl)
	svc := NewOrganizationService(orgs, mocks.NewMockJobIndexer(ctrl), auth.NewAuthorizationService(), zerolog.Nop())
	ctx := context.Background()

	orgs.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Organization) error {
		o.ID = 10
		return nil
	})
	org, err := svc.CreateOrganization(ctx, alice, " Microsoft ")
	require.NoError(t, err)
	assert.Equal(t, "Microsoft", org.Name)
	assert.Equal(t, alice.ID, org.CreatorID)

	orgs.EXPECT().GetByID(ctx, int64(10)).Return(&models.Organization{ID: 10, Name: "Microsoft", CreatorID: alice.ID}, nil).Times(3)

	rename := "Microsoft Corp"
	_, err = svc.UpdateOrganization(ctx, bob, 10, &rename)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	orgs.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	updated, err := svc.UpdateOrganization(ctx, alice, 10, &rename)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft Corp", updated.Name)
	assert.Equal(t, alice.ID, updated.CreatorID)

	assert.ErrorIs(t, svc.DeleteOrganization(ctx, bob, 10), apperrors.ErrPermissionDenied)
}

func TestOrganizationService_CreateAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewOrganizationService(mocks.NewMockOrganizationStore(ctrl), mocks.NewMockJobIndexer(ctrl), auth.NewAuthorizationService(), zerolog.Nop())
	_, err := svc.CreateOrganization(context.Background(), nil, "Microsoft")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestDegreeService_StaffOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	degrees := mocks.NewMockDegreeStore(ctrl)
	svc := NewDegreeService(degrees, mocks.NewMockJobIndexer(ctrl), auth.NewAuthorizationService(), zerolog.Nop())
	ctx := context.Background()
	staff := &models.User{ID: 9, IsStaff: true}

	_, err := svc.CreateDegree(ctx, alice, "Masters")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	degrees.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	degree, err := svc.CreateDegree(ctx, staff, "Masters")
	require.NoError(t, err)
	assert.Equal(t, "Masters", degree.Name)

	degrees.EXPECT().GetByID(ctx, int64(404)).Return(nil, apperrors.NewResourceNotFoundError("Degree not found."))
	assert.ErrorIs(t, svc.DeleteDegree(ctx, alice, 404), apperrors.ErrResourceNotFound)
}

func TestOrganizationService_DeleteDropsCascadedJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationStore(ctrl)
	indexer := mocks.NewMockJobIndexer(ctrl)
	svc := NewOrganizationService(orgs, indexer, auth.NewAuthorizationService(), zerolog.Nop())
	ctx := context.Background()

	orgs.EXPECT().GetByID(ctx, int64(10)).Return(&models.Organization{ID: 10, Name: "Microsoft", CreatorID: alice.ID}, nil)
	orgs.EXPECT().Delete(ctx, int64(10)).Return([]int64{3, 4}, nil)
	gomock.InOrder(
		indexer.EXPECT().DeleteJob(ctx, int64(3)).Return(nil),
		indexer.EXPECT().DeleteJob(ctx, int64(4)).Return(nil),
	)

	require.NoError(t, svc.DeleteOrganization(ctx, alice, 10))
}

func TestOrganizationService_DeleteIgnoresIndexFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationStore(ctrl)
	indexer := mocks.NewMockJobIndexer(ctrl)
	svc := NewOrganizationService(orgs, indexer, auth.NewAuthorizationService(), zerolog.Nop())
	ctx := context.Background()

	orgs.EXPECT().GetByID(ctx, int64(10)).Return(&models.Organization{ID: 10, Name: "Microsoft", CreatorID: alice.ID}, nil)
	orgs.EXPECT().Delete(ctx, int64(10)).Return([]int64{3, 4}, nil)
	indexer.EXPECT().DeleteJob(ctx, int64(3)).Return(errors.New("cluster down"))
	indexer.EXPECT().DeleteJob(ctx, int64(4)).Return(nil)

	assert.NoError(t, svc.DeleteOrganization(ctx, alice, 10))
}

func TestOrganizationService_DeleteFailureSkipsIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationStore(ctrl)
	svc := NewOrganizationService(orgs, mocks.NewMockJobIndexer(ctrl), auth.NewAuthorizationService(), zerolog.Nop())
	ctx := context.Background()

	orgs.EXPECT().GetByID(ctx, int64(10)).Return(&models.Organization{ID: 10, Name: "Microsoft", CreatorID: alice.ID}, nil)
	orgs.EXPECT().Delete(ctx, int64(10)).Return(nil, apperrors.NewResourceNotFoundError("Organization not found."))

	assert.ErrorIs(t, svc.DeleteOrganization(ctx, alice, 10), apperrors.ErrResourceNotFound)
}

func TestDegreeService_DeleteDropsCascadedJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	degrees := mocks.NewMockDegreeStore(ctrl)
	indexer := mocks.NewMockJobIndexer(ctrl)
	svc := NewDegreeService(degrees, indexer, auth.NewAuthorizationService(), zerolog.Nop())
	ctx := context.Background()
	staff := &models.User{ID: 9, IsStaff: true}

	degrees.EXPECT().GetByID(ctx, int64(2)).Return(&models.Degree{ID: 2, Name: "Masters"}, nil).Times(2)
	assert.ErrorIs(t, svc.DeleteDegree(ctx, alice, 2), apperrors.ErrPermissionDenied)

	degrees.EXPECT().Delete(ctx, int64(2)).Return([]int64{7, 8, 9}, nil)
	for _, id := range []int64{7, 8, 9} {
		indexer.EXPECT().DeleteJob(ctx, id).Return(nil)
	}
	require.NoError(t, svc.DeleteDegree(ctx, staff, 2))
}

func TestSpotlightService_Patch(t *testing.T) {
	ctrl := gomock.NewController(t)
	spotlights := mocks.NewMockSpotlightStore(ctrl)
	svc := NewSpotlightService(spotlights, auth.NewAuthorizationService())
	ctx := context.Background()
	staff := &models.User{ID: 9, IsStaff: true}

	spotlights.EXPECT().GetByID(ctx, int64(1)).
		Return(&models.Spotlight{ID: 1, Title: "Old", Img: "https://example.com/a.png", Description: "d"}, nil).Times(2)
	spotlights.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	title := "New"
	_, err := svc.PatchSpotlight(ctx, alice, 1, &dto.SpotlightPatchRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	got, err := svc.PatchSpotlight(ctx, staff, 1, &dto.SpotlightPatchRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "https://example.com/a.png", got.Img)
}

func TestSearchService_Disabled(t *testing.T) {
	svc := NewSearchService(nil)
	_, _, err := svc.SearchJobs(context.Background(), models.JobSearchQuery{})
	assert.ErrorIs(t, err, apperrors.ErrSearchUnavailable)
	_, err = svc.SuggestTitles(context.Background(), "dev", false)
	assert.ErrorIs(t, err, apperrors.ErrSearchUnavailable)
}

func TestSearchService_BlankSuggestPrefix(t *testing.T) {
	svc := NewSearchService(mocks.NewMockJobSearcher(gomock.NewController(t)))
	got, err := svc.SuggestTitles(context.Background(), "  ", true)
	require.NoError(t, err)
	assert.Empty(t, got)
}
