package cryptomkt

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	. "github.com/deforceHK/gocryptomkt"
)

// GetBalance returns the status of the crypto and local wallets.
func (c *Client) GetBalance(ctx context.Context) ([]*Balance, []byte, error) {
	var response []struct {
		Wallet    string              `json:"wallet"`
		Available decimal.NullDecimal `json:"available"`
		Balance   decimal.NullDecimal `json:"balance"`
	}
	resp, err := c.DoSignRequest(ctx, http.MethodGet, BALANCE_URI, nil, &response)
	if err != nil {
		return nil, resp, err
	}

	balances := make([]*Balance, 0, len(response))
	for _, item := range response {
		fc := fieldCheck{}
		balance := &Balance{
			Currency:  NewCurrency(fc.str("wallet", item.Wallet), ""),
			Wallet:    item.Wallet,
			Available: fc.decimal("available", item.Available),
			Balance:   fc.decimal("balance", item.Balance),
		}
		if err := fc.err("balance"); err != nil {
			return nil, resp, err
		}
		balances = append(balances, balance)
	}
	return balances, resp, nil
}

func (c *Client) GetAccount(ctx context.Context) (*Account, []byte, error) {
	var response struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Rate  struct {
			MarketMaker decimal.NullDecimal `json:"market_maker"`
			MarketTaker decimal.NullDecimal `json:"market_taker"`
		} `json:"rate"`
		BankAccounts []struct {
			Id       int64  `json:"id"`
			Bank     string `json:"bank"`
			Number   string `json:"number"`
			Type     string `json:"type"`
			Currency string `json:"currency"`
			Country  string `json:"country"`
		} `json:"bank_accounts"`
	}
	resp, err := c.DoSignRequest(ctx, http.MethodGet, ACCOUNT_URI, nil, &response)
	if err != nil {
		return nil, resp, err
	}

	fc := fieldCheck{}
	account := &Account{
		Exchange:     CRYPTOMKT,
		Name:         response.Name,
		Email:        fc.str("email", response.Email),
		MarketMaker:  response.Rate.MarketMaker.Decimal,
		MarketTaker:  response.Rate.MarketTaker.Decimal,
		BankAccounts: make([]BankAccount, 0, len(response.BankAccounts)),
	}
	if err := fc.err("account"); err != nil {
		return nil, resp, err
	}
	for _, bank := range response.BankAccounts {
		account.BankAccounts = append(account.BankAccounts, BankAccount(bank))
	}
	return account, resp, nil
}

type paymentRecord struct {
	Id                string              `json:"id"`
	ExternalId        string              `json:"external_id"`
	Status            *int                `json:"status"`
	ToReceive         decimal.NullDecimal `json:"to_receive"`
	ToReceiveCurrency string              `json:"to_receive_currency"`
	ExpectedAmount    decimal.NullDecimal `json:"expected_amount"`
	ExpectedCurrency  string              `json:"expected_currency"`
	DepositAddress    string              `json:"deposit_address"`
	RefundEmail       string              `json:"refund_email"`
	Qr                string              `json:"qr"`
	Obs               string              `json:"obs"`
	CallbackUrl       string              `json:"callback_url"`
	ErrorUrl          string              `json:"error_url"`
	SuccessUrl        string              `json:"success_url"`
	PaymentUrl        string              `json:"payment_url"`
	CreatedAt         string              `json:"created_at"`
	UpdatedAt         string              `json:"updated_at"`
}

func (c *Client) toPayment(record *paymentRecord) (*Payment, error) {
	fc := fieldCheck{}
	payment := &Payment{
		Id:                fc.str("id", record.Id),
		ExternalId:        record.ExternalId,
		ToReceive:         fc.decimal("to_receive", record.ToReceive),
		ToReceiveCurrency: fc.str("to_receive_currency", record.ToReceiveCurrency),
		ExpectedAmount:    record.ExpectedAmount.Decimal,
		ExpectedCurrency:  record.ExpectedCurrency,
		DepositAddress:    record.DepositAddress,
		RefundEmail:       record.RefundEmail,
		Qr:                record.Qr,
		Obs:               record.Obs,
		CallbackUrl:       record.CallbackUrl,
		ErrorUrl:          record.ErrorUrl,
		SuccessUrl:        record.SuccessUrl,
		PaymentUrl:        record.PaymentUrl,
	}
	if record.Status == nil {
		fc.missing = append(fc.missing, "status")
	} else {
		payment.Status = *record.Status
	}
	if record.CreatedAt != "" {
		payment.CreatedAt, _ = c.toMillisecond(fc.time("created_at", record.CreatedAt))
	}
	if record.UpdatedAt != "" {
		payment.UpdatedAt, _ = c.toMillisecond(fc.time("updated_at", record.UpdatedAt))
	}
	if err := fc.err("payment"); err != nil {
		return nil, err
	}
	return payment, nil
}

// CreatePaymentOrder creates a payment order and returns the urls and qr to
// pay it. An empty external id is replaced by a generated one.
func (c *Client) CreatePaymentOrder(ctx context.Context, req *PaymentRequest) (*Payment, []byte, error) {
	if req == nil {
		return nil, nil, NewInvalidArgument("payment request is nil")
	}
	if !req.ToReceive.IsPositive() {
		return nil, nil, NewInvalidArgument("to_receive %s must be positive", req.ToReceive)
	}
	if req.ToReceiveCurrency == "" || req.PaymentReceiver == "" {
		return nil, nil, NewInvalidArgument("to_receive_currency and payment_receiver are required")
	}

	externalId := req.ExternalId
	if externalId == "" {
		externalId = UUID()
	}

	params := url.Values{}
	params.Set("to_receive", req.ToReceive.String())
	params.Set("to_receive_currency", req.ToReceiveCurrency)
	params.Set("payment_receiver", req.PaymentReceiver)
	params.Set("external_id", externalId)
	optional := map[string]string{
		"callback_url": req.CallbackUrl,
		"error_url":    req.ErrorUrl,
		"success_url":  req.SuccessUrl,
		"refund_email": req.RefundEmail,
		"language":     req.Language,
	}
	for k, v := range optional {
		if v != "" {
			params.Set(k, v)
		}
	}

	var response paymentRecord
	resp, err := c.DoSignRequest(ctx, http.MethodPost, PAYMENT_NEW_ORDER_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}
	payment, err := c.toPayment(&response)
	return payment, resp, err
}

func (c *Client) GetPaymentStatus(ctx context.Context, id string) (*Payment, []byte, error) {
	if id == "" {
		return nil, nil, NewInvalidArgument("payment id is empty")
	}

	params := url.Values{}
	params.Set("id", id)

	var response paymentRecord
	resp, err := c.DoSignRequest(ctx, http.MethodGet, PAYMENT_STATUS_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}
	payment, err := c.toPayment(&response)
	return payment, resp, err
}

// GetPaymentOrders lists the payment orders created between start and end.
func (c *Client) GetPaymentOrders(
	ctx context.Context,
	start,
	end string,
	page,
	limit int,
) ([]*Payment, *Pagination, []byte, error) {
	if start == "" || end == "" {
		return nil, nil, nil, NewInvalidArgument("start and end dates are required")
	}
	if err := CheckDateRange(start, end); err != nil {
		return nil, nil, nil, err
	}
	if err := checkPaging(page, limit); err != nil {
		return nil, nil, nil, err
	}

	params := url.Values{}
	params.Set("start_date", start)
	params.Set("end_date", end)
	pagingParams(params, page, limit)

	var response []paymentRecord
	pagination := newPagination(page, limit)
	resp, err := c.doSignRequest(ctx, http.MethodGet, PAYMENT_ORDERS_URI, params, &response, pagination)
	if err != nil {
		return nil, nil, resp, err
	}

	payments := make([]*Payment, 0, len(response))
	for i := range response {
		payment, err := c.toPayment(&response[i])
		if err != nil {
			return nil, nil, resp, err
		}
		payments = append(payments, payment)
	}
	return payments, pagination, resp, nil
}
