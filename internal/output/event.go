package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/xitongsys/parquet-go/schema"
)

const TopicOrderEvents = "order_events"

// OrderPlacedEvent is the flat record written for every completed order,
// shaped for both JSON sinks and the parquet schema handler.
type OrderPlacedEvent struct {
	Timestamp int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderID   string  `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemIDs   string  `json:"itemIds" parquet:"name=itemIds,type=BYTE_ARRAY,convertedtype=UTF8"`
	Bundles   int32   `json:"bundles" parquet:"name=bundles,type=INT32"`
	Leftovers int32   `json:"leftovers" parquet:"name=leftovers,type=INT32"`
	Rejected  int32   `json:"rejected" parquet:"name=rejected,type=INT32"`
	Subtotal  float64 `json:"subtotal" parquet:"name=subtotal,type=DOUBLE"`
	Tax       float64 `json:"tax" parquet:"name=tax,type=DOUBLE"`
	Total     float64 `json:"total" parquet:"name=total,type=DOUBLE"`
}

func NewOrderPlacedEvent(summary models.OrderSummary) OrderPlacedEvent {
	ids := make([]string, len(summary.Requested))
	for i, id := range summary.Requested {
		ids[i] = strconv.Itoa(id)
	}
	return OrderPlacedEvent{
		Timestamp: summary.PlacedAt.Unix(),
		EventType: "ORDER_PLACED",
		OrderID:   summary.OrderID,
		ItemIDs:   strings.Join(ids, ","),
		Bundles:   int32(len(summary.Bundles)),
		Leftovers: int32(len(summary.Leftovers)),
		Rejected:  int32(len(summary.Rejected)),
		Subtotal:  summary.Subtotal,
		Tax:       summary.Tax,
		Total:     summary.Total,
	}
}

// GetSchema resolves the parquet schema for a topic.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	switch topic {
	case TopicOrderEvents:
		sh, err := schema.NewSchemaHandlerFromStruct(new(OrderPlacedEvent))
		if err != nil {
			return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
		}
		return sh, nil
	default:
		return nil, fmt.Errorf("unknown event type: %s", topic)
	}
}
