package order_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newLine(t *testing.T, sku string, qty int, price kernel.Money) *order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), sku, qty, "unit", price, price)
	require.NoError(t, err)
	return l
}

func newOrder(t *testing.T, lines ...*order.Line) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "net30", lines, 0, 0, now)
	require.NoError(t, err)
	return o
}

func approveAll(o *order.Order) []order.Resolution {
	out := make([]order.Resolution, 0)
	for _, l := range o.Lines() {
		out = append(out, order.Resolution{LineID: l.ID(), Kind: order.KindApproved, ApprovedQuantity: l.RequestedQuantity()})
	}
	return out
}

func TestNewLine(t *testing.T) {
	t.Run("should compute subtotal from final price", func(t *testing.T) {
		l, err := order.NewLine(kernel.NewUUID(), "SKU-1", 3, "box", 1200, 1000)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, kernel.Money(3000), l.Subtotal())
	})

	t.Run("should aggregate every invalid field", func(t *testing.T) {
		l, err := order.NewLine(kernel.UUID{}, "", 0, "", -1, 10)

		require.Error(t, err)
		assert.Nil(t, l)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "sku")
		assert.Contains(t, err.Error(), "requestedQuantity")
		assert.Contains(t, err.Error(), "unitOfMeasure")
		assert.Contains(t, err.Error(), "listPrice")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var l order.Line
		assert.ErrorIs(t, l.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should compute totals and start pending", func(t *testing.T) {
		lines := []*order.Line{newLine(t, "A", 2, 500), newLine(t, "B", 1, 250)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "cash", lines, 100, 60, now)

		require.NoError(t, err)
		assert.Equal(t, order.PendingValidation, o.Status())
		assert.Equal(t, kernel.Money(1250), o.Subtotal())
		assert.Equal(t, kernel.Money(1210), o.FinalTotal())
		assert.Equal(t, o.Subtotal()-o.DiscountTotal()+o.TaxTotal(), o.FinalTotal())

		entries := o.PullTransitions()
		require.Len(t, entries, 1)
		assert.Equal(t, "order.created", entries[0].EventType())
		assert.Equal(t, "pending_validation", entries[0].To)
		assert.Empty(t, o.PullTransitions())
	})

	t.Run("should require at least one line", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "cash", nil, 0, 0, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should refuse duplicated line ids", func(t *testing.T) {
		l := newLine(t, "A", 1, 100)
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "cash", []*order.Line{l, l}, 0, 0, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "appears twice")
	})

	t.Run("should refuse a discount larger than the order", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "cash",
			[]*order.Line{newLine(t, "A", 1, 100)}, 500, 0, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_ApplyValidation(t *testing.T) {
	t.Run("should validate and record", func(t *testing.T) {
		o := newOrder(t, newLine(t, "A", 2, 100))
		o.PullTransitions()

		require.NoError(t, o.ApplyValidation(approveAll(o), now))

		assert.Equal(t, order.Validated, o.Status())
		require.NotNil(t, o.ValidatedAt())
		assert.Equal(t, 2, o.ApprovedUnits())
		entries := o.PullTransitions()
		require.Len(t, entries, 1)
		assert.Equal(t, "order.validated", entries[0].EventType())
	})

	t.Run("all rejected lines reject the order", func(t *testing.T) {
		l := newLine(t, "A", 2, 100)
		o := newOrder(t, l)

		err := o.ApplyValidation([]order.Resolution{{LineID: l.ID(), Kind: order.KindRejected, Reason: "no stock"}}, now)

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("identical resubmission is a no-op", func(t *testing.T) {
		o := newOrder(t, newLine(t, "A", 2, 100))
		res := approveAll(o)
		require.NoError(t, o.ApplyValidation(res, now))
		o.PullTransitions()

		require.NoError(t, o.ApplyValidation(res, now.Add(time.Minute)))
		assert.Empty(t, o.PullTransitions())
	})

	t.Run("different resubmission is a precondition error", func(t *testing.T) {
		l := newLine(t, "A", 2, 100)
		o := newOrder(t, l)
		require.NoError(t, o.ApplyValidation(approveAll(o), now))

		err := o.ApplyValidation([]order.Resolution{{LineID: l.ID(), Kind: order.KindRejected, Reason: "x"}}, now)

		var pe *errs.PreconditionError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, errs.CodeOrderNotPending, pe.Code)
		assert.Equal(t, o.ID().String(), pe.EntityID)
	})

	t.Run("identical resubmission after a manual reject is a precondition error", func(t *testing.T) {
		o := newOrder(t, newLine(t, "A", 2, 100))
		res := approveAll(o)
		require.NoError(t, o.ApplyValidation(res, now))
		require.NoError(t, o.Reject("customer withdrew", now))
		assert.False(t, o.AcceptsRevalidation())

		err := o.ApplyValidation(res, now.Add(time.Minute))

		var pe *errs.PreconditionError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, errs.CodeOrderNotPending, pe.Code)
		assert.Equal(t, order.Rejected.String(), pe.Current)
	})

	t.Run("identical resubmission of an all-rejected validation is a no-op", func(t *testing.T) {
		l := newLine(t, "A", 2, 100)
		o := newOrder(t, l)
		res := []order.Resolution{{LineID: l.ID(), Kind: order.KindRejected, Reason: "no stock"}}
		require.NoError(t, o.ApplyValidation(res, now))
		o.PullTransitions()

		assert.True(t, o.AcceptsRevalidation())
		require.NoError(t, o.ApplyValidation(res, now.Add(time.Minute)))
		assert.Empty(t, o.PullTransitions())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newOrder(t, newLine(t, "A", 1, 100))
	require.NoError(t, o.ApplyValidation(approveAll(o), now))
	require.NoError(t, o.MarkInPreparation(now))
	require.NoError(t, o.MarkInPreparation(now))
	require.NoError(t, o.MarkInvoiced(now))
	require.NoError(t, o.Dispatch(kernel.NewUUID(), now))
	require.NoError(t, o.Dispatch(kernel.NewUUID(), now))
	assert.Equal(t, order.EnRoute, o.Status())

	require.NoError(t, o.ReturnToPool("delivery failed", now))
	assert.Equal(t, order.Validated, o.Status())

	require.NoError(t, o.Dispatch(kernel.NewUUID(), now))
	require.NoError(t, o.MarkDelivered(now))
	assert.Equal(t, order.Delivered, o.Status())

	err := o.Cancel("late", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPrecondition)
}

func TestOrder_DispatchRequiresValidation(t *testing.T) {
	o := newOrder(t, newLine(t, "A", 1, 100))

	err := o.Dispatch(kernel.NewUUID(), now)

	var pe *errs.PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, errs.CodeOrderNotValidated, pe.Code)
	assert.Equal(t, "pending_validation", pe.Current)
}

func TestOrder_RejectAndCancel(t *testing.T) {
	t.Run("reject requires a reason", func(t *testing.T) {
		o := newOrder(t, newLine(t, "A", 1, 100))
		assert.ErrorIs(t, o.Reject("", now), errs.ErrValueIsRequired)
	})

	t.Run("reject is idempotent", func(t *testing.T) {
		o := newOrder(t, newLine(t, "A", 1, 100))
		require.NoError(t, o.Reject("customer withdrew", now))
		require.NoError(t, o.Reject("customer withdrew", now))
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		o := newOrder(t, newLine(t, "A", 1, 100))
		require.NoError(t, o.Cancel("duplicate", now))
		require.NoError(t, o.Cancel("duplicate", now))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	l := newLine(t, "A", 4, 100)
	res := []order.Resolution{{LineID: l.ID(), Kind: order.KindPartiallyApproved, ApprovedQuantity: 3, Reason: "short"}}

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "south", "net15",
		[]*order.Line{l}, 0, 0, order.Validated, res, now, &now, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, o.Version())
	assert.Equal(t, 3, o.ApprovedQuantity(l.ID()))
	assert.Empty(t, o.PullTransitions())
}
