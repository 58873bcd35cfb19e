package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"facade-storefront/internal/catalog"
	"facade-storefront/internal/client"
	"facade-storefront/internal/config"
	"facade-storefront/internal/dto"
	"facade-storefront/internal/model"
	"facade-storefront/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidOrder marks a submission that fails validation. No side effect
// has happened when it is returned.
var ErrInvalidOrder = errors.New("Invalid order data")

// Outcome records what each best-effort step of the pipeline did. Slip
// upload, persistence and inventory adjustment failures land here instead of
// failing the order; only the notification sends are allowed to fail it.
type Outcome struct {
	OrderID string
	// SlipURL is empty when no slip was attached or the upload failed.
	SlipURL      string
	UploadErr    error
	PersistErr   error
	InventoryErr error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, sub *dto.OrderSubmission) (*Outcome, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, []*model.OrderItem, error)
}

type orderServiceImpl struct {
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
	uploader      client.CloudinaryClient
	mailer        client.EmailJSClient

	customerTemplateID string
	shopTemplateID     string
	shopEmail          string
	siteURL            string

	log *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	uploader client.CloudinaryClient,
	mailer client.EmailJSClient,
	cfg *config.Config,
	log *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:          orderRepo,
		inventoryRepo:      inventoryRepo,
		uploader:           uploader,
		mailer:             mailer,
		customerTemplateID: cfg.EmailJS.CustomerTemplateID,
		shopTemplateID:     cfg.EmailJS.ShopTemplateID,
		shopEmail:          cfg.ShopEmail,
		siteURL:            cfg.SiteURL,
		log:                log,
	}
}

// PlaceOrder runs the checkout pipeline: validate, upload the payment slip,
// persist the order, decrement inventory, then send the two notification
// emails. The middle steps are best-effort; the order is considered placed
// as long as validation and the emails succeed. Payment confirmation is
// manual via the slip, so a lost slip URL or database write degrades the
// record but must not block the sale.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, sub *dto.OrderSubmission) (*Outcome, error) {
	if sub.CustomerEmail == "" || sub.CustomerName == "" || len(sub.Items) == 0 {
		return nil, ErrInvalidOrder
	}

	out := &Outcome{}

	if len(sub.PaymentSlip) > 0 {
		uploadID := fmt.Sprintf("order-%d", time.Now().UnixMilli())
		url, err := s.uploader.UploadPaymentSlip(ctx, sub.PaymentSlip, sub.PaymentSlipMime, uploadID)
		if err != nil {
			out.UploadErr = err
			s.log.Warn("payment slip upload failed", zap.Error(err))
		} else {
			out.SlipURL = url
		}
	}

	orderID, err := s.persistOrder(ctx, sub, out.SlipURL)
	if err != nil {
		out.PersistErr = err
		orderID = fmt.Sprintf("temp-%d", time.Now().UnixMilli())
		s.log.Warn("order persistence failed, continuing with emails",
			zap.String("fallback_order_id", orderID), zap.Error(err))
	}
	out.OrderID = orderID

	if err := s.adjustInventory(ctx, sub.Items); err != nil {
		out.InventoryErr = err
		s.log.Warn("inventory update failed, order still processed",
			zap.String("order_id", orderID), zap.Error(err))
	}

	params := s.templateParams(sub, out)

	if s.customerTemplateID != "" {
		customerParams := withRecipient(params, sub.CustomerEmail, sub.CustomerName)
		if err := s.mailer.Send(ctx, s.customerTemplateID, customerParams); err != nil {
			return nil, fmt.Errorf("send customer email: %w", err)
		}
	}

	if s.shopTemplateID != "" {
		shopParams := withRecipient(params, s.shopEmail, "Facade Shop")
		shopParams["shop_email"] = s.shopEmail
		if err := s.mailer.Send(ctx, s.shopTemplateID, shopParams); err != nil {
			return nil, fmt.Errorf("send shop email: %w", err)
		}
	}

	s.log.Info("order placed",
		zap.String("order_id", orderID),
		zap.Int("items", len(sub.Items)),
		zap.Int64("total", sub.Total))

	return out, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, []*model.OrderItem, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *orderServiceImpl) persistOrder(ctx context.Context, sub *dto.OrderSubmission, slipURL string) (string, error) {
	order := &model.Order{
		CustomerEmail:  sub.CustomerEmail,
		CustomerName:   sub.CustomerName,
		Phone:          sub.Phone,
		Address:        sub.Address,
		Country:        sub.Country,
		Province:       sub.Province,
		PostalCode:     sub.PostalCode,
		PaymentSlipURL: slipURL,
		Total:          sub.Total,
		Status:         model.OrderStatusPending,
	}

	items := make([]*model.OrderItem, len(sub.Items))
	for i, item := range sub.Items {
		items[i] = &model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
		}
	}

	return s.orderRepo.Create(ctx, order, items)
}

// adjustInventory decrements stock per ordered item, flooring at zero.
// Items without an inventory record are skipped. The first error abandons
// the remaining items.
//
// The read-then-write is not atomic across concurrent orders: two orders
// for the last unit can both read stock=1 and both succeed. Whether that
// oversell is accepted risk or a bug is an open business question; a
// conditional decrement would close it.
func (s *orderServiceImpl) adjustInventory(ctx context.Context, items []dto.OrderItem) error {
	for _, item := range items {
		record, err := s.inventoryRepo.Get(ctx, item.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("get inventory %s: %w", item.ProductID, err)
		}

		newStock := record.Stock - item.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := s.inventoryRepo.UpdateStock(ctx, item.ProductID, newStock, newStock > 0); err != nil {
			return fmt.Errorf("update stock %s: %w", item.ProductID, err)
		}
	}

	return nil
}

// templateParams builds the flat parameter set shared by both emails.
func (s *orderServiceImpl) templateParams(sub *dto.OrderSubmission, out *Outcome) map[string]any {
	return map[string]any{
		"customer_email":   sub.CustomerEmail,
		"customer_name":    sub.CustomerName,
		"customer_phone":   orDefault(sub.Phone, "Not provided"),
		"customer_address": formatAddress(sub.Address, sub.Province, sub.PostalCode, sub.Country),
		"order_lines":      formatLineItems(sub.Items),
		"orders":           templateItems(sub.Items, s.siteURL),
		"shipping":         catalog.FormatPrice(0),
		"tax":              catalog.FormatPrice(0),
		"order_total":      amountTHB(sub.Total) + " THB",
		"order_id":         out.OrderID,
		"payment_slip":     out.SlipURL,
		"website_link":     s.siteURL,
	}
}

// withRecipient copies the shared params and fills the addressing fields.
func withRecipient(params map[string]any, email, name string) map[string]any {
	out := make(map[string]any, len(params)+3)
	for k, v := range params {
		out[k] = v
	}
	out["email"] = email
	out["to_email"] = email
	out["to_name"] = name
	return out
}
