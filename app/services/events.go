package services

import (
	"encoding/json"

	"github.com/jackmarxreacher-creator/rby-sub000/pkg/event"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/ws"
)

// OrderEvent is the message pushed to the live dashboard feed.
type OrderEvent struct {
	Event       string  `json:"event"`
	OrderID     uint    `json:"orderId"`
	Customer    string  `json:"customer"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
}

func orderEvent(id uint, customer, status string, total float64) OrderEvent {
	return OrderEvent{OrderID: id, Customer: customer, Status: status, TotalAmount: total}
}

// RegisterOrderFeed wires the order lifecycle events onto the WebSocket hub.
// Called once at boot.
func RegisterOrderFeed() {
	for _, name := range []string{"order.created", "order.updated", "order.status"} {
		name := name
		event.Listen(name, func(payload interface{}) {
			evt, isEvt := payload.(OrderEvent)
			if !isEvt {
				return
			}
			evt.Event = name
			if msg, err := json.Marshal(evt); err == nil {
				ws.OrderFeed.Publish(msg)
			}
		})
	}
}
