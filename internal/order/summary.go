package order

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// printer renders currency with two decimals and thousands grouping.
var printer = message.NewPrinter(language.English)

// Payload is a checkout submission: contact fields plus the cart blob the
// browser posts as order_json. Orders are never persisted; the payload
// lives only long enough to become a notification message.
type Payload struct {
	Name      string
	Email     string
	Phone     string
	Note      string
	OrderJSON string
}

type cartItem struct {
	Title string
	Qty   float64
	Price float64
}

// parseCart decodes the order_json blob. A blob that fails to parse is
// treated as an empty cart with a zero total; parsing never errors out to
// the caller. Missing item fields take defaults: title "Item", qty 1,
// price 0.
func parseCart(blob string) ([]cartItem, float64) {
	var raw struct {
		Items []map[string]interface{} `json:"items"`
		Total interface{}              `json:"total"`
	}
	if err := json.UnmarshalFromString(blob, &raw); err != nil {
		return nil, 0
	}

	items := make([]cartItem, 0, len(raw.Items))
	for _, m := range raw.Items {
		it := cartItem{Title: "Item", Qty: 1}
		if v, ok := m["title"]; ok {
			if s := cast.ToString(v); s != "" {
				it.Title = s
			}
		}
		if v, ok := m["qty"]; ok {
			if f, err := cast.ToFloat64E(v); err == nil {
				it.Qty = f
			}
		}
		if v, ok := m["price"]; ok {
			it.Price = cast.ToFloat64(v)
		}
		items = append(items, it)
	}
	return items, cast.ToFloat64(raw.Total)
}

// BuildSummary formats the order as a Markdown message for the notification
// sink. Contact lines appear only when non-empty, in name/phone/note order;
// the total line is always last.
func BuildSummary(p Payload) string {
	items, total := parseCart(p.OrderJSON)

	lines := []string{"🛒 *New Order*"}
	if p.Name != "" {
		lines = append(lines, "*Name:* "+p.Name)
	}
	if p.Phone != "" {
		lines = append(lines, "*Phone:* "+p.Phone)
	}
	if p.Note != "" {
		lines = append(lines, "*Note:* "+p.Note)
	}
	lines = append(lines, "")
	if len(items) > 0 {
		lines = append(lines, "*Items:*")
		for _, it := range items {
			subtotal := it.Qty * it.Price
			lines = append(lines, "• "+it.Title+" × "+formatQty(it.Qty)+" = $"+money(subtotal))
		}
	}
	lines = append(lines, "", "*Total:* $"+money(total))
	return strings.Join(lines, "\n")
}

func money(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// formatQty drops a trailing ".0" so whole quantities read naturally.
func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
