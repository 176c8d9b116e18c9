package catalog

// HistoryWindow is the number of trailing days of sales kept per SKU.
const HistoryWindow = 7

// State is the mutable inventory position for one SKU. It is owned by a
// single session and mutated only by the daily simulation and by order
// arrivals.
type State struct {
	OnHand  int   `json:"on_hand"`
	History []int `json:"history"` // daily sales counts, most recent last
}

// RecordSales appends a day's fulfilled sales to the rolling history,
// evicting the oldest entry once the window is full.
func (st *State) RecordSales(sold int) {
	st.History = append(st.History, sold)
	if len(st.History) > HistoryWindow {
		st.History = st.History[1:]
	}
}

// Receive credits an arrived replenishment order to on-hand stock.
func (st *State) Receive(qty int) {
	st.OnHand += qty
}
