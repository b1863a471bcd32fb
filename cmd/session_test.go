package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chrisdamba/burgerbar/internal/menu"
	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/pos"
	"github.com/chrisdamba/burgerbar/internal/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvent struct {
	topic string
	msg   []byte
}

type fakeDestination struct {
	events []capturedEvent
	closed bool
}

func (f *fakeDestination) WriteMessage(topic string, msg []byte) error {
	f.events = append(f.events, capturedEvent{topic: topic, msg: msg})
	return nil
}

func (f *fakeDestination) Close() error {
	f.closed = true
	return nil
}

func newTestSession(t *testing.T, input string) (*Session, *fakeDestination, *bytes.Buffer) {
	t.Helper()
	items := models.DefaultMenu()
	catalogue, err := menu.NewCatalogue(items)
	require.NoError(t, err)
	ledger := stock.NewLedger(items)

	out := &bytes.Buffer{}
	dest := &fakeDestination{}
	session := &Session{
		Catalogue: catalogue,
		Assembler: pos.NewAssembler(catalogue, ledger, 0.05, 0.15),
		Output:    dest,
		In:        strings.NewReader(input),
		Out:       out,
	}
	return session, dest, out
}

func TestSessionPlacesComboOrder(t *testing.T) {
	// one burger, one side, one drink, confirm purchase, then stop
	session, dest, out := newTestSession(t, "1\n7\n14\nq\nyes\nno\n")

	require.NoError(t, session.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Welcome to the Burger Bar!")
	assert.Contains(t, rendered, "Burger Combo")
	assert.Contains(t, rendered, "Thank you for your order!")
	assert.Contains(t, rendered, "Goodbye")

	require.Len(t, dest.events, 1)
	assert.Equal(t, "order_events", dest.events[0].topic)
	assert.True(t, dest.closed)
}

func TestSessionRejectsBadInput(t *testing.T) {
	session, dest, out := newTestSession(t, "abc\n-3\n999\n2\nq\nno\nno\n")

	require.NoError(t, session.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Please enter a valid number.")
	assert.Contains(t, rendered, "Please enter a number below 21.")
	// declined purchase emits no event
	assert.Empty(t, dest.events)
}

func TestSessionEndsWhenInputCloses(t *testing.T) {
	// input ends right after the purchase answer, before the repeat prompt
	session, dest, out := newTestSession(t, "1\nq\nyes\n")

	require.NoError(t, session.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Thank you for your order!")
	assert.Contains(t, rendered, "Goodbye")
	assert.Equal(t, 1, strings.Count(rendered, "Here is a summary of your order:"))
	require.Len(t, dest.events, 1)
	assert.True(t, dest.closed)
}

func TestSessionEndsOnEmptyInput(t *testing.T) {
	session, dest, out := newTestSession(t, "")

	require.NoError(t, session.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Goodbye")
	assert.NotContains(t, rendered, "Placing order ...")
	assert.Empty(t, dest.events)
}

func TestSessionEndsWhenInputClosesMidOrder(t *testing.T) {
	// the stream closes while items are still being collected: the partial
	// order is placed and rendered, then the session ends
	session, dest, out := newTestSession(t, "1\n")

	require.NoError(t, session.Run())

	rendered := out.String()
	assert.Equal(t, 1, strings.Count(rendered, "Here is a summary of your order:"))
	assert.Contains(t, rendered, "Goodbye")
	// no confirmation was possible, so no event was emitted
	assert.Empty(t, dest.events)
}

func TestSessionReportsOutOfStock(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Category: models.CategoryBurgers, Name: "Classic Burger", Price: 7.99, InitialStock: 1},
	}
	catalogue, err := menu.NewCatalogue(items)
	require.NoError(t, err)
	ledger := stock.NewLedger(items)

	out := &bytes.Buffer{}
	session := &Session{
		Catalogue: catalogue,
		Assembler: pos.NewAssembler(catalogue, ledger, 0.05, 0.15),
		Output:    &fakeDestination{},
		In:        strings.NewReader("1\n1\nq\nno\nno\n"),
		Out:       out,
	}

	require.NoError(t, session.Run())
	assert.Contains(t, out.String(), "Unfortunately item number 1 is out of stock and has been removed from your order. Sorry!")
}
