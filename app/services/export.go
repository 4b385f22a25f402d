package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// ExportCSV renders an order and its line items as CSV for download from the
// staff dashboard.
func (s *RequestService) ExportCSV(id uint) ([]byte, string, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("export: order %d: %w", id, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Order", strconv.FormatUint(uint64(order.ID), 10)})
	w.Write([]string{"Customer", order.Customer.Name})
	w.Write([]string{"Email", order.Customer.Email})
	w.Write([]string{"Business Type", order.Customer.BusinessType})
	w.Write([]string{"Status", order.Status})
	w.Write([]string{"Created", order.CreatedAt.Format("2006-01-02 15:04")})
	w.Write([]string{""})
	w.Write([]string{"Product ID", "Quantity", "Unit Price", "Amount"})

	for _, item := range order.Items {
		w.Write([]string{
			strconv.FormatUint(uint64(item.ProductID), 10),
			strconv.Itoa(item.Quantity),
			formatMoney(item.Price),
			formatMoney(item.Amount),
		})
	}

	w.Write([]string{""})
	w.Write([]string{"", "", "Total", formatMoney(order.TotalAmount)})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("order-%d.csv", order.ID)
	return buf.Bytes(), filename, nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
