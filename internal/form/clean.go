package form

// Normalize returns a copy of the record with incomplete entries removed:
// line items missing a product name, category or positive quantity, and
// dispatch entries missing a product, positive quantity, transport method
// or status. Complete entries are kept in their original order.
func (r *OrderRecord) Normalize() *OrderRecord {
	out := r.Clone()

	items := out.OrderDetails[:0]
	for _, li := range out.OrderDetails {
		if li.ProductName != "" && li.OrderCategory != "" && li.Quantity > 0 {
			items = append(items, li)
		}
	}
	out.OrderDetails = items

	entries := out.Dispatch[:0]
	for _, d := range out.Dispatch {
		if d.Product != "" && d.QuantityDispatched > 0 &&
			d.TransportMethod != "" && d.DispatchStatus != "" {
			entries = append(entries, d)
		}
	}
	out.Dispatch = entries

	return out
}
