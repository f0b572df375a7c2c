package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"healthbridge/internal/model"
)

// Archiver persists best-effort copies of completed orders: a JSON snapshot
// and a rendered invoice, both keyed by order id and timestamp. Failures are
// reported to the caller for logging but must never fail the checkout.
type Archiver interface {
	Enabled() bool
	ArchiveOrder(order *model.Order, items []model.OrderItem) error
	ArchiveFile(srcPath, name string) error
}

// DirArchiver writes archives under a local directory, mirroring the
// orders/ and invoices/ layout of an object-store bucket.
type DirArchiver struct {
	dir     string
	enabled bool
	now     func() time.Time
}

// NewDirArchiver creates an archiver rooted at dir. When enabled is false
// every operation is a no-op; callers hold a working collaborator either way
// instead of checking a global.
func NewDirArchiver(dir string, enabled bool) *DirArchiver {
	return &DirArchiver{dir: dir, enabled: enabled, now: time.Now}
}

// Enabled reports whether archiving is active.
func (a *DirArchiver) Enabled() bool {
	return a.enabled
}

// ArchiveOrder writes the order JSON snapshot and its invoice.
func (a *DirArchiver) ArchiveOrder(order *model.Order, items []model.OrderItem) error {
	if !a.enabled {
		return nil
	}

	stamp := a.now().Format("20060102_150405")

	payload := map[string]interface{}{
		"order_id":      order.ID,
		"customer_name": order.CustomerName,
		"phone":         order.Phone,
		"address":       order.Address,
		"items":         items,
		"total_price":   order.TotalPrice,
		"status":        order.Status,
		"created_at":    order.CreatedAt,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal order %d: %w", order.ID, err)
	}

	jsonKey := filepath.Join(a.dir, "orders", fmt.Sprintf("order_%d_%s.json", order.ID, stamp))
	if err := writeFile(jsonKey, data); err != nil {
		return fmt.Errorf("archive order json: %w", err)
	}

	invoiceKey := filepath.Join(a.dir, "invoices", fmt.Sprintf("invoice_%d_%s.txt", order.ID, stamp))
	if err := writeFile(invoiceKey, []byte(renderInvoice(order, items))); err != nil {
		return fmt.Errorf("archive invoice: %w", err)
	}
	return nil
}

// ArchiveFile copies an uploaded asset into the archive under its name.
func (a *DirArchiver) ArchiveFile(srcPath, name string) error {
	if !a.enabled {
		return nil
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	dst := filepath.Join(a.dir, "product_images", name)
	if err := writeFile(dst, data); err != nil {
		return fmt.Errorf("archive file %s: %w", name, err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// renderInvoice produces a plain-text invoice document for the order.
func renderInvoice(order *model.Order, items []model.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INVOICE PEMBELIAN\n")
	fmt.Fprintf(&b, "=================\n\n")
	fmt.Fprintf(&b, "Order ID : #%d\n", order.ID)
	fmt.Fprintf(&b, "Tanggal  : %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Customer : %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone    : %s\n", order.Phone)
	fmt.Fprintf(&b, "Alamat   : %s\n\n", order.Address)
	fmt.Fprintf(&b, "%-40s %5s %12s %12s\n", "Produk", "Qty", "Harga", "Subtotal")
	for _, item := range items {
		fmt.Fprintf(&b, "%-40s %5d %12s %12s\n",
			item.Name, item.Quantity, "Rp "+item.Price.StringFixed(0), "Rp "+item.Subtotal.StringFixed(0))
	}
	fmt.Fprintf(&b, "\nTOTAL: Rp %s\n", order.TotalPrice.StringFixed(0))
	return b.String()
}
