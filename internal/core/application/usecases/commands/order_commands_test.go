package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func lineInputs(quantities ...int) []commands.OrderLineInput {
	out := make([]commands.OrderLineInput, 0, len(quantities))
	for i, q := range quantities {
		out = append(out, commands.OrderLineInput{
			LineID:        kernel.NewUUID(),
			SKU:           "SKU-" + string(rune('A'+i)),
			Quantity:      q,
			UnitOfMeasure: "box",
			ListPrice:     1000,
			FinalPrice:    900,
		})
	}
	return out
}

func pendingOrder(t *testing.T, quantities ...int) *order.Order {
	t.Helper()
	lines := make([]*order.Line, 0, len(quantities))
	for _, in := range lineInputs(quantities...) {
		l, err := order.NewLine(in.LineID, in.SKU, in.Quantity, in.UnitOfMeasure, in.ListPrice, in.FinalPrice)
		require.NoError(t, err)
		lines = append(lines, l)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "net30", lines, 0, 0, testTime)
	require.NoError(t, err)
	o.PullTransitions()
	return o
}

func approveAll(o *order.Order) []order.ValidationResult {
	out := make([]order.ValidationResult, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		out = append(out, order.ValidationResult{LineID: l.ID(), Disposition: order.Approved{}})
	}
	return out
}

func orderUoW(repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestNewCreateOrderCommand(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(id, client, seller *kernel.UUID, lines *[]commands.OrderLineInput)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(_, _, _ *kernel.UUID, _ *[]commands.OrderLineInput) {},
		},
		{
			name:    "missing client",
			mutate:  func(_, client, _ *kernel.UUID, _ *[]commands.OrderLineInput) { *client = kernel.UUID{} },
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "no lines",
			mutate:  func(_, _, _ *kernel.UUID, lines *[]commands.OrderLineInput) { *lines = nil },
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, client, seller := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
			lines := lineInputs(2)
			tt.mutate(&id, &client, &seller, &lines)

			cmd, err := commands.NewCreateOrderCommand(id, client, seller, "north", "net30", lines, 0, 0)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, id, cmd.OrderID())
			assert.Len(t, cmd.Lines(), 1)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "net30", lineInputs(3, 1), 100, 50)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsEqual(cmd.OrderID()) &&
			o.Status() == order.PendingValidation &&
			o.FinalTotal() == kernel.Money(3600-100+50)
	})).Return(nil).Once()
	uow, factory := orderUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	err := commands.NewCreateOrderCommandHandler(factory).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_InvalidLine(t *testing.T) {
	lines := lineInputs(1)
	lines[0].Quantity = 0
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "net30", lines, 0, 0)
	require.NoError(t, err)
	factory := new(MockOrderUoWFactory)

	err = commands.NewCreateOrderCommandHandler(factory).Handle(t.Context(), cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "net30", lineInputs(1), 0, 0)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add failed")).Once()
	uow, factory := orderUoW(repo)

	err = commands.NewCreateOrderCommandHandler(factory).Handle(t.Context(), cmd)

	require.EqualError(t, err, "add failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestValidateOrderCommandHandler_ApprovesAll(t *testing.T) {
	o := pendingOrder(t, 2, 3)
	cmd, err := commands.NewValidateOrderCommand(o.ID(), approveAll(o))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow, factory := orderUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()
	catalog := new(MockCatalogClient)

	err = commands.NewValidateOrderCommandHandler(factory, catalog).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Validated, o.Status())
	assert.Equal(t, 5, o.ApprovedUnits())
	catalog.AssertNotCalled(t, "ActiveSKUs", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestValidateOrderCommandHandler_ChecksSubstitutes(t *testing.T) {
	o := pendingOrder(t, 4)
	results := []order.ValidationResult{{
		LineID:      o.Lines()[0].ID(),
		Disposition: order.Substituted{SKU: "SKU-NEW", Quantity: order.Units(4), Reason: "discontinued"},
	}}
	cmd, err := commands.NewValidateOrderCommand(o.ID(), results)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow, factory := orderUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()
	catalog := new(MockCatalogClient)
	catalog.On("ActiveSKUs", mock.Anything, []string{"SKU-NEW"}).Return(map[string]bool{"SKU-NEW": true}, nil).Once()

	err = commands.NewValidateOrderCommandHandler(factory, catalog).Handle(t.Context(), cmd)

	require.NoError(t, err)
	require.Len(t, o.Resolutions(), 1)
	assert.Equal(t, "SKU-NEW", o.Resolutions()[0].SubstituteSKU)
	catalog.AssertExpectations(t)
}

func TestValidateOrderCommandHandler_CatalogDown(t *testing.T) {
	o := pendingOrder(t, 4)
	results := []order.ValidationResult{{
		LineID:      o.Lines()[0].ID(),
		Disposition: order.Substituted{SKU: "SKU-NEW", Quantity: order.Units(4), Reason: "discontinued"},
	}}
	cmd, err := commands.NewValidateOrderCommand(o.ID(), results)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow, factory := orderUoW(repo)
	catalog := new(MockCatalogClient)
	catalog.On("ActiveSKUs", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	err = commands.NewValidateOrderCommandHandler(factory, catalog).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	assert.Equal(t, order.PendingValidation, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestValidateOrderCommandHandler_ReportsEveryLine(t *testing.T) {
	o := pendingOrder(t, 2, 2)
	results := []order.ValidationResult{{
		LineID:      o.Lines()[0].ID(),
		Disposition: order.PartiallyApproved{Quantity: order.Units(5), Reason: "short"},
	}}
	cmd, err := commands.NewValidateOrderCommand(o.ID(), results)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	_, factory := orderUoW(repo)

	err = commands.NewValidateOrderCommandHandler(factory, new(MockCatalogClient)).Handle(t.Context(), cmd)

	var verr *order.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 2)
	assert.Equal(t, order.PendingValidation, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestValidateOrderCommandHandler_CancelledOrderSkipsCatalog(t *testing.T) {
	o := pendingOrder(t, 4)
	require.NoError(t, o.Cancel("duplicate", time.Now()))
	results := []order.ValidationResult{{
		LineID:      o.Lines()[0].ID(),
		Disposition: order.Substituted{SKU: "SKU-NEW", Quantity: order.Units(4), Reason: "discontinued"},
	}}
	cmd, err := commands.NewValidateOrderCommand(o.ID(), results)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow, factory := orderUoW(repo)
	catalog := new(MockCatalogClient)

	err = commands.NewValidateOrderCommandHandler(factory, catalog).Handle(t.Context(), cmd)

	var pe *errs.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, errs.CodeOrderNotPending, pe.Code)
	catalog.AssertNotCalled(t, "ActiveSKUs", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestValidateOrderCommandHandler_RepeatIsNoop(t *testing.T) {
	o := pendingOrder(t, 2)
	results := approveAll(o)
	engineResolutions := []order.Resolution{{LineID: o.Lines()[0].ID(), Kind: order.KindApproved, ApprovedQuantity: 2}}
	require.NoError(t, o.ApplyValidation(engineResolutions, testTime))
	o.PullTransitions()

	cmd, err := commands.NewValidateOrderCommand(o.ID(), results)
	require.NoError(t, err)
	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow, factory := orderUoW(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	err = commands.NewValidateOrderCommandHandler(factory, new(MockCatalogClient)).Handle(t.Context(), cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewChangeOrderStatusCommand(id, commands.OrderActionReject, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewChangeOrderStatusCommand(id, "archive", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewChangeOrderStatusCommand(id, commands.OrderActionInvoice, "")
	require.NoError(t, err)
	assert.Equal(t, commands.OrderActionInvoice, cmd.Action())
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		action commands.OrderAction
		want   order.Status
	}{
		{"reject", commands.OrderActionReject, order.Rejected},
		{"cancel", commands.OrderActionCancel, order.Cancelled},
		{"prepare", commands.OrderActionPrepare, order.InPreparation},
		{"invoice", commands.OrderActionInvoice, order.Invoiced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := pendingOrder(t, 1)
			require.NoError(t, o.ApplyValidation(
				[]order.Resolution{{LineID: o.Lines()[0].ID(), Kind: order.KindApproved, ApprovedQuantity: 1}}, testTime))
			o.PullTransitions()

			cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), tt.action, "customer request")
			require.NoError(t, err)
			repo := new(MockOrderRepository)
			repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
			repo.On("Update", mock.Anything, o).Return(nil).Once()
			uow, factory := orderUoW(repo)
			uow.On("Commit", mock.Anything).Return(nil).Once()

			err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, o.Status())
			repo.AssertExpectations(t)
		})
	}
}

func TestChangeOrderStatusCommandHandler_InvalidTransition(t *testing.T) {
	o := pendingOrder(t, 1)
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), commands.OrderActionPrepare, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow, factory := orderUoW(repo)

	err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPrecondition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_NotFound(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, commands.OrderActionCancel, "duplicate")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()
	_, factory := orderUoW(repo)

	err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
