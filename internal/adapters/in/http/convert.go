package http

import (
	"fmt"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return out, nil
}

func toKernelIDs(param string, ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for i, id := range ids {
		kid, err := toKernelID(fmt.Sprintf("%s[%d]", param, i), id)
		if err != nil {
			return nil, err
		}
		out = append(out, kid)
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toOrderSummaries(in []queries.OrderSummary) []servers.OrderSummary {
	out := make([]servers.OrderSummary, 0, len(in))
	for _, o := range in {
		out = append(out, servers.OrderSummary{
			Id:            o.ID.Bytes(),
			ClientId:      o.ClientID.Bytes(),
			ZoneId:        o.ZoneID,
			Status:        o.Status,
			ApprovedUnits: o.ApprovedUnits,
			FinalTotal:    int64(o.FinalTotal),
			ValidatedAt:   o.ValidatedAt,
		})
	}
	return out
}

func toOrder(v queries.OrderView) servers.Order {
	lines := make([]servers.OrderLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		line := servers.OrderLine{
			Id:                l.ID.Bytes(),
			Sku:               l.SKU,
			RequestedQuantity: l.RequestedQuantity,
			UnitOfMeasure:     l.UnitOfMeasure,
			ListPrice:         int64(l.ListPrice),
			FinalPrice:        int64(l.FinalPrice),
			Subtotal:          int64(l.Subtotal),
		}
		if r := l.Resolution; r != nil {
			line.Resolution = &servers.LineResolution{
				Disposition:      r.Disposition,
				ApprovedQuantity: r.ApprovedQuantity,
				SubstituteSku:    optional(r.SubstituteSKU),
				Reason:           optional(r.Reason),
			}
		}
		lines = append(lines, line)
	}

	return servers.Order{
		Id:            v.ID.Bytes(),
		ClientId:      v.ClientID.Bytes(),
		SellerId:      v.SellerID.Bytes(),
		ZoneId:        v.ZoneID,
		PaymentTerm:   v.PaymentTerm,
		Status:        v.Status,
		ApprovedUnits: v.ApprovedUnits,
		Subtotal:      int64(v.Subtotal),
		DiscountTotal: int64(v.DiscountTotal),
		TaxTotal:      int64(v.TaxTotal),
		FinalTotal:    int64(v.FinalTotal),
		CreatedAt:     v.CreatedAt,
		ValidatedAt:   v.ValidatedAt,
		Version:       v.Version,
		Lines:         lines,
	}
}

func toRoute(v queries.RouteView) servers.Route {
	stops := make([]servers.Stop, 0, len(v.Stops))
	for _, s := range v.Stops {
		stops = append(stops, servers.Stop{
			OrderId:  s.OrderID.Bytes(),
			Position: s.Position,
			Released: s.Released,
		})
	}
	return servers.Route{
		Id:            v.ID.Bytes(),
		DriverId:      v.DriverID.Bytes(),
		VehicleId:     v.VehicleID.Bytes(),
		ZoneId:        v.ZoneID,
		ScheduledDate: openapi_types.Date{Time: v.ScheduledDate},
		Status:        v.Status,
		CancelReason:  optional(v.CancelReason),
		CreatedAt:     v.CreatedAt,
		Version:       v.Version,
		Stops:         stops,
	}
}

func toDeliveries(in []queries.DeliveryView) ([]servers.Delivery, error) {
	out := make([]servers.Delivery, 0, len(in))
	for _, d := range in {
		dto, err := toDelivery(d)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

func toDelivery(v queries.DeliveryView) (servers.Delivery, error) {
	lines := make([]servers.DeliveredLine, 0, len(v.DeliveredLines))
	for _, l := range v.DeliveredLines {
		id, err := kernel.UUIDFromString(l.LineID)
		if err != nil {
			return servers.Delivery{}, err
		}
		lines = append(lines, servers.DeliveredLine{LineId: id.Bytes(), Quantity: l.Quantity})
	}

	evidences := make([]servers.Evidence, 0, len(v.Evidences))
	for _, e := range v.Evidences {
		evidences = append(evidences, servers.Evidence{
			Id:         e.ID.Bytes(),
			Kind:       e.Kind,
			Url:        e.URL,
			Hash:       optional(e.Hash),
			SizeBytes:  e.SizeBytes,
			CapturedAt: e.CapturedAt,
		})
	}

	incidents := make([]servers.Incident, 0, len(v.Incidents))
	for _, i := range v.Incidents {
		incidents = append(incidents, servers.Incident{
			Id:          i.ID.Bytes(),
			Kind:        i.Kind,
			Description: i.Description,
			ReportedAt:  i.ReportedAt,
			Resolved:    i.Resolved,
			Resolution:  optional(i.Resolution),
			ResolvedAt:  i.ResolvedAt,
		})
	}

	return servers.Delivery{
		Id:             v.ID.Bytes(),
		RouteId:        v.RouteID.Bytes(),
		OrderId:        v.OrderID.Bytes(),
		DriverId:       v.DriverID.Bytes(),
		StopOrder:      v.StopOrder,
		Status:         v.Status,
		Reason:         optional(v.Reason),
		Observations:   optional(v.Observations),
		DeliveredLines: lines,
		DepartedAt:     v.DepartedAt,
		CompletedAt:    v.CompletedAt,
		CreatedAt:      v.CreatedAt,
		Version:        v.Version,
		Evidences:      evidences,
		Incidents:      incidents,
	}, nil
}

func toHistory(v queries.HistoryView) servers.History {
	entries := make([]servers.HistoryEntry, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, toHistoryEntry(e))
	}
	return servers.History{Entries: entries, StatusAt: v.StatusAt}
}

func toHistoryEntry(e history.Entry) servers.HistoryEntry {
	return servers.HistoryEntry{
		Event: e.Event,
		From:  e.From,
		To:    e.To,
		Note:  optional(e.Note),
		At:    e.At,
	}
}
