package impl

import (
	"context"
	"fmt"
	"testing"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNameLookup_BatchesAndCaches(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	lookup := newNameLookup(users)
	ctx := context.Background()

	uids := make([]string, 0, 45)
	for i := range 45 {
		uids = append(uids, fmt.Sprintf("user-%02d", i))
	}

	var batches [][]string
	users.EXPECT().FindByIDs(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []string) (map[string]*entity.UserProfile, error) {
			batches = append(batches, ids)
			found := make(map[string]*entity.UserProfile)
			for _, id := range ids {
				if id != "user-07" {
					found[id] = &entity.UserProfile{ID: id, Name: "N" + id}
				}
			}

			return found, nil
		}).Twice()

	names, err := lookup.Resolve(ctx, append(uids, "", "user-00"))
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], repository.MaxInValues)
	assert.Len(t, batches[1], 15)
	assert.Equal(t, "Nuser-00", names["user-00"])
	assert.Equal(t, "user-0...", names["user-07"])
	assert.Equal(t, "Unknown", names[""])

	again, err := lookup.Resolve(ctx, []string{"user-01", "user-07"})
	require.NoError(t, err)
	assert.Equal(t, "Nuser-01", again["user-01"])
}

func TestNameLookup_Failure(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	lookup := newNameLookup(users)
	ctx := context.Background()

	users.EXPECT().FindByIDs(ctx, []string{"u1"}).Return(nil, errors.New("unavailable")).Once()

	_, err := lookup.Resolve(ctx, []string{"u1"})

	assert.Error(t, err)
}
