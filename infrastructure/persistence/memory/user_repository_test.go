package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"usersapp/domain/shared"
	"usersapp/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, name string, age int) *user.User {
	t.Helper()
	u, err := user.NewUser(name, age)
	require.NoError(t, err)
	return u
}

func names(t *testing.T, repo *UserRepository) []string {
	t.Helper()
	users, err := repo.List(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name().Value())
	}
	return out
}

func TestUserRepository_AppendKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Append(ctx, mustUser(t, "Ann", 30)))
	require.NoError(t, repo.Append(ctx, mustUser(t, "Bob", 40)))
	require.NoError(t, repo.Append(ctx, mustUser(t, "Cid", 50)))

	assert.Equal(t, []string{"Ann", "Bob", "Cid"}, names(t, repo))
}

func TestUserRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.Append(ctx, mustUser(t, "Ann", 30)))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	users[0] = nil

	assert.Equal(t, []string{"Ann"}, names(t, repo))
}

func TestUserRepository_FindFirstReturnsFirstDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	first := mustUser(t, "Ann", 30)
	second := mustUser(t, "Ann", 31)
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	found, err := repo.FindFirst(ctx, user.NewByNameSpecification("Ann"))
	require.NoError(t, err)
	assert.Equal(t, first.ID(), found.ID())

	_, err = repo.FindFirst(ctx, user.NewByNameSpecification("Bob"))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserRepository_RemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	bob := mustUser(t, "Bob", 40)
	require.NoError(t, repo.Append(ctx, mustUser(t, "Ann", 30)))
	require.NoError(t, repo.Append(ctx, bob))
	require.NoError(t, repo.Append(ctx, mustUser(t, "Cid", 50)))

	require.NoError(t, repo.Remove(ctx, bob))
	assert.Equal(t, []string{"Ann", "Cid"}, names(t, repo))

	err := repo.Remove(ctx, bob)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Equal(t, []string{"Ann", "Cid"}, names(t, repo))
}

func TestUserRepository_RemoveOnlyTheGivenDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	first := mustUser(t, "Ann", 30)
	second := mustUser(t, "Ann", 31)
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	require.NoError(t, repo.Remove(ctx, first))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, second.ID(), users[0].ID())
}

func TestUserRepository_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	var want []string
	var wg sync.WaitGroup
	for i := range 32 {
		name := fmt.Sprintf("user-%02d", i)
		want = append(want, name)
		u := mustUser(t, name, i+1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, u))
		}()
	}
	wg.Wait()

	if diff := cmp.Diff(want, names(t, repo), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("users mismatch (-want +got):\n%s", diff)
	}
}
