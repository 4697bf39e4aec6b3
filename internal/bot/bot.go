// internal/bot/bot.go
package bot

import (
	"context"
	"fmt"
	"loan-catalog/internal/domain"
	"loan-catalog/internal/money"
	"loan-catalog/internal/service"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

const helpText = "🏦 *Loan catalog*\n\n" +
	"Commands:\n" +
	"`/loans` — list loan products\n" +
	"`/loan 3` — show one product\n" +
	"`/search vivienda` — find products by name\n" +
	"`/calc Libranza; 12000000; 1` — repayment plan (optional 4th field: annual rate, e.g. 0.15)"

// previewMonths is how many schedule rows a chat reply shows at each end.
const previewMonths = 3

// Bot answers chat commands using the same services as the HTTP API.
type Bot struct {
	loans *service.LoanService
	calc  *service.Calculator
}

func New(loans *service.LoanService, calc *service.Calculator) *Bot {
	return &Bot{loans: loans, calc: calc}
}

// Reply returns the message to send back for one incoming text.
func (b *Bot) Reply(ctx context.Context, text string) string {
	text = sanitizeInput(fixEncoding(text))
	cmd, arg, _ := strings.Cut(text, " ")
	// "/loans@SomeBot" in group chats.
	cmd, _, _ = strings.Cut(cmd, "@")
	arg = strings.TrimSpace(arg)

	var (
		msg string
		err error
	)
	switch cmd {
	case "/start", "/help":
		msg = helpText
	case "/loans":
		msg, err = b.listLoans(ctx)
	case "/loan":
		msg, err = b.showLoan(ctx, arg)
	case "/search":
		msg, err = b.search(ctx, arg)
	case "/calc":
		msg, err = b.calculate(ctx, arg)
	default:
		msg = "Unknown command. Send /help"
	}

	if err != nil {
		return "❌ " + escape(err.Error())
	}
	return msg
}

func (b *Bot) listLoans(ctx context.Context) (string, error) {
	loans, err := b.loans.List(ctx, "")
	if err != nil {
		return "", err
	}
	if len(loans) == 0 {
		return "📭 The catalog is empty", nil
	}
	return formatLoans("🏦 *Loan products*", loans), nil
}

func (b *Bot) showLoan(ctx context.Context, arg string) (string, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("usage: /loan <id>")
	}
	loan, err := b.loans.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return formatLoans("🏦 *Loan product*", []domain.LoanProduct{loan}), nil
}

func (b *Bot) search(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("usage: /search <name>")
	}
	loans, err := b.loans.Search(ctx, arg)
	if err != nil {
		return "", err
	}
	return formatLoans("🔍 *Products matching:* "+escape(arg), loans), nil
}

func (b *Bot) calculate(ctx context.Context, arg string) (string, error) {
	req, err := parseCalc(arg)
	if err != nil {
		return "", err
	}
	res, err := b.calc.Calculate(ctx, req)
	if err != nil {
		return "", err
	}

	s := res.Summary
	lines := []string{
		"🧮 *Repayment plan:* " + escape(res.Product.ProductName),
		fmt.Sprintf("Principal: %s", money.Currency(s.Principal)),
		fmt.Sprintf("Rate: %s", money.Percent(s.AnnualInterestRate)),
		fmt.Sprintf("Monthly payment: %s", money.Currency(s.MonthlyPayment)),
		fmt.Sprintf("Total interest: %s", money.Currency(s.TotalInterest)),
		fmt.Sprintf("Total payment: %s", money.Currency(s.TotalPayment)),
		fmt.Sprintf("Last payment around: %s", s.FinalPaymentDate.Format(money.Date)),
		"",
	}
	for i, e := range res.Schedule {
		if i == previewMonths && len(res.Schedule) > 2*previewMonths {
			lines = append(lines, "…")
		}
		if i >= previewMonths && i < len(res.Schedule)-previewMonths {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. principal %s, interest %s, balance %s",
			e.Month, money.Currency(e.PrincipalPaid), money.Currency(e.InterestPaid), money.Currency(e.RemainingBalance)))
	}
	return strings.Join(lines, "\n"), nil
}

// parseCalc reads "<product>; <amount>; <years>[; <rate>]".
func parseCalc(arg string) (domain.CalculationRequest, error) {
	usage := fmt.Errorf("usage: /calc <product>; <amount>; <years>[; <rate>]")

	parts := strings.Split(arg, ";")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.CalculationRequest{}, usage
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return domain.CalculationRequest{}, usage
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(parts[1], ",", ""))
	if err != nil || !amount.IsPositive() {
		return domain.CalculationRequest{}, fmt.Errorf("invalid amount: %q", parts[1])
	}
	years, err := strconv.Atoi(parts[2])
	if err != nil || years <= 0 || years > 50 {
		return domain.CalculationRequest{}, fmt.Errorf("invalid term in years: %q", parts[2])
	}

	req := domain.CalculationRequest{Amount: amount, ProductName: parts[0], TermYears: years}
	if len(parts) == 4 {
		rate, err := decimal.NewFromString(parts[3])
		if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return domain.CalculationRequest{}, fmt.Errorf("invalid rate: %q", parts[3])
		}
		req.CustomAnnualRate = &rate
	}
	return req, nil
}

func formatLoans(title string, loans []domain.LoanProduct) string {
	lines := []string{title}
	for _, p := range loans {
		lines = append(lines, fmt.Sprintf("%d. %s: %s – %s, %s",
			p.ID, escape(p.ProductName), money.Currency(p.MinimumAmount), money.Currency(p.MaximumAmount),
			money.Percent(p.AnnualInterestRate)))
	}
	return strings.Join(lines, "\n")
}

// escape makes user-supplied text literal in a Markdown reply.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// sanitizeInput collapses every kind of whitespace to single spaces.
func sanitizeInput(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// fixEncoding recovers product names sent by clients still on Windows-1252.
func fixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	fixed, err := charmap.Windows1252.NewDecoder().String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}
	return strings.ToValidUTF8(s, "")
}
