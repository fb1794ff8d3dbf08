package services

import (
	"strconv"
	"strings"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportService builds the back-office xlsx downloads.
type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

func (s *ExportService) ProductsFile() (*xlsx.File, error) {
	var products []entity.Product
	if err := s.DB.Preload("Brand").Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Slug", "SKU", "Price", "Quantity", "Brand", "Category", "CreatedAt"} {
		header.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(int(p.ID))
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Slug)
		row.AddCell().SetValue(p.SKU)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Quantity)
		if p.Brand != nil {
			row.AddCell().SetValue(p.Brand.Name)
		} else {
			row.AddCell().SetValue("")
		}
		if p.Category != nil {
			row.AddCell().SetValue(p.Category.Name)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}

func (s *ExportService) OrdersFile() (*xlsx.File, error) {
	var orders []entity.Order
	if err := s.DB.Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range []string{"ID", "OrderNumber", "Status", "Subtotal", "Total", "PaymentMethod", "Items", "CreatedAt"} {
		header.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(int(o.ID))
		row.AddCell().SetValue(o.OrderNumber)
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.Subtotal)
		row.AddCell().SetValue(o.Total)
		row.AddCell().SetValue(o.PaymentMethod)

		var names []string
		for _, it := range o.Items {
			names = append(names, it.Name+" x"+strconv.Itoa(it.Quantity))
		}
		row.AddCell().SetValue(strings.Join(names, ", "))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}
