package impl

import (
	"context"
	"testing"

	"supplyhub/internal/domain/entity"
	domainerrors "supplyhub/internal/domain/errors"
	"supplyhub/internal/domain/repository"
	mockRepo "supplyhub/internal/mocks/repository"
	mockSvc "supplyhub/internal/mocks/service"
	"supplyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type branchServiceFixtures struct {
	service    usecase.BranchUsecase
	branchRepo *mockRepo.MockBranchRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestBranchService(t *testing.T) branchServiceFixtures {
	fx := branchServiceFixtures{
		branchRepo: mockRepo.NewMockBranchRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
	}
	fx.service = NewBranchService(BranchServiceParams{
		BranchRepo: fx.branchRepo,
		Hasher:     fx.hasher,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestBranchService_CreateBranch(t *testing.T) {
	fx := createTestBranchService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.branchRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Branch) bool {
			return b.PasswordHash == "hashed" && b.Role == entity.RoleBranch && b.Email == "harbor@example.com"
		})).
		Return(nil)

	branch, err := fx.service.CreateBranch(ctx, &usecase.CreateBranchInput{
		FirstName: "Harbor",
		Email:     "Harbor@Example.com",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBranch, branch.Role)
	assert.Equal(t, "active", branch.Status)
}

func TestBranchService_CreateBranch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx branchServiceFixtures)
		wantErr error
	}{
		{
			name: "hash failure",
			setup: func(fx branchServiceFixtures) {
				fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost too high"))
			},
			wantErr: domainerrors.ErrPasswordHashFailed,
		},
		{
			name: "duplicate email",
			setup: func(fx branchServiceFixtures) {
				fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
				fx.branchRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrBranchEmailTaken)
			},
			wantErr: domainerrors.ErrBranchAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBranchService(t)
			tt.setup(fx)

			_, err := fx.service.CreateBranch(context.Background(), &usecase.CreateBranchInput{Email: "a@b.c", Password: "password"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
