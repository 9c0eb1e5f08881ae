package util

import (
	"errors"
	"regexp"
	"strings"

	"financezenn-server/src/models"
)

var (
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	lowerRe   = regexp.MustCompile("[a-z]")
	upperRe   = regexp.MustCompile("[A-Z]")
	digitRe   = regexp.MustCompile("[0-9]")
	specialRe = regexp.MustCompile(`[^A-Za-z0-9]`)
	phoneRe   = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)
)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerRe.MatchString(password) && upperRe.MatchString(password) &&
		digitRe.MatchString(password) && specialRe.MatchString(password)
}

// ValidatePhone accepts E.164 numbers, "+5511999990000".
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ValidateTransactionInput(in models.TransactionInput) error {
	switch {
	case blank(in.Description):
		return errors.New("description is required")
	case blank(in.Category):
		return errors.New("category is required")
	case in.Amount < 0:
		return errors.New("amount must not be negative")
	case !in.Type.Valid():
		return errors.New("type must be income or expense")
	case in.Date.IsZero():
		return errors.New("date is required")
	}
	return nil
}

func ValidateUpdateTransactionRequest(req models.UpdateTransactionRequest) error {
	switch {
	case req.Description != nil && blank(*req.Description):
		return errors.New("description must not be blank")
	case req.Category != nil && blank(*req.Category):
		return errors.New("category must not be blank")
	case req.Amount != nil && *req.Amount < 0:
		return errors.New("amount must not be negative")
	case req.Type != nil && !req.Type.Valid():
		return errors.New("type must be income or expense")
	case req.Date != nil && req.Date.IsZero():
		return errors.New("date must not be empty")
	}
	return nil
}

func ValidateInvestmentInput(in models.InvestmentInput) error {
	switch {
	case blank(in.Name):
		return errors.New("name is required")
	case blank(in.Type):
		return errors.New("type is required")
	case in.Amount < 0:
		return errors.New("amount must not be negative")
	case in.CurrentValue < 0:
		return errors.New("currentValue must not be negative")
	}
	return nil
}

func ValidateUpdateInvestmentRequest(req models.UpdateInvestmentRequest) error {
	switch {
	case req.Name != nil && blank(*req.Name):
		return errors.New("name must not be blank")
	case req.Type != nil && blank(*req.Type):
		return errors.New("type must not be blank")
	case req.Amount != nil && *req.Amount < 0:
		return errors.New("amount must not be negative")
	case req.CurrentValue != nil && *req.CurrentValue < 0:
		return errors.New("currentValue must not be negative")
	}
	return nil
}

func ValidateDebtInput(in models.DebtInput) error {
	switch {
	case blank(in.Name):
		return errors.New("name is required")
	case in.Amount < 0:
		return errors.New("amount must not be negative")
	case in.InterestRate < 0:
		return errors.New("interestRate must not be negative")
	case in.MinPayment < 0:
		return errors.New("minPayment must not be negative")
	}
	return nil
}

func ValidateUpdateDebtRequest(req models.UpdateDebtRequest) error {
	switch {
	case req.Name != nil && blank(*req.Name):
		return errors.New("name must not be blank")
	case req.Amount != nil && *req.Amount < 0:
		return errors.New("amount must not be negative")
	case req.InterestRate != nil && *req.InterestRate < 0:
		return errors.New("interestRate must not be negative")
	case req.MinPayment != nil && *req.MinPayment < 0:
		return errors.New("minPayment must not be negative")
	}
	return nil
}

func ValidateGoalInput(in models.GoalInput) error {
	switch {
	case blank(in.Name):
		return errors.New("name is required")
	case in.TargetAmount < 0:
		return errors.New("targetAmount must not be negative")
	case in.CurrentAmount < 0:
		return errors.New("currentAmount must not be negative")
	}
	return nil
}

func ValidateUpdateGoalRequest(req models.UpdateGoalRequest) error {
	switch {
	case req.Name != nil && blank(*req.Name):
		return errors.New("name must not be blank")
	case req.TargetAmount != nil && *req.TargetAmount < 0:
		return errors.New("targetAmount must not be negative")
	case req.CurrentAmount != nil && *req.CurrentAmount < 0:
		return errors.New("currentAmount must not be negative")
	}
	return nil
}

func ValidateUpdateUserParamsRequest(req models.UpdateUserParamsRequest) error {
	switch {
	case req.Caixa != nil && *req.Caixa < 0:
		return errors.New("caixa must not be negative")
	case req.MesesReserva != nil && *req.MesesReserva < 0:
		return errors.New("mesesReserva must not be negative")
	case req.MetaPatrimonio != nil && *req.MetaPatrimonio < 0:
		return errors.New("metaPatrimonio must not be negative")
	case req.TaxaRetorno != nil && *req.TaxaRetorno < 0:
		return errors.New("taxaRetorno must not be negative")
	}
	return nil
}
