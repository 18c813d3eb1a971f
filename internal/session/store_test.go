package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Dispatch(t *testing.T) {
	store := NewStore(func() time.Time { return now })
	id, state := store.Create()
	assert.Equal(t, ViewMenu, state.View)

	state, err := store.Dispatch(id, SetCustomerName{Value: "Jo"}, SetView{View: ViewCart})
	require.NoError(t, err)
	assert.Equal(t, "Jo", state.Form.CustomerName)
	assert.Equal(t, ViewCart, state.View)

	_, err = store.Dispatch("nope", SetView{View: ViewCart})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DispatchIsAllOrNothing(t *testing.T) {
	store := NewStore(nil)
	id, _ := store.Create()

	_, err := store.Dispatch(id, SetCustomerName{Value: "Jo"}, SetView{View: ViewOrders})
	assert.ErrorIs(t, err, ErrAdminRequired)

	state, ok := store.Get(id)
	require.True(t, ok)
	assert.Empty(t, state.Form.CustomerName)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := NewStore(nil)
	id, _ := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Dispatch(id, AddToCart{Item: brownie(), Quantity: 1})
		}()
	}
	wg.Wait()

	state, _ := store.Get(id)
	assert.Equal(t, 50, state.Cart.Count())
}

func TestStore_Prune(t *testing.T) {
	clock := now
	store := NewStore(func() time.Time { return clock })

	stale, _ := store.Create()
	clock = clock.Add(2 * time.Hour)
	fresh, _ := store.Create()

	assert.Equal(t, 1, store.Prune(time.Hour))
	_, ok := store.Get(stale)
	assert.False(t, ok)
	_, ok = store.Get(fresh)
	assert.True(t, ok)
}
