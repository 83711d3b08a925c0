package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"finance-tracker/internal/models"

	log "github.com/sirupsen/logrus"
)

// DashboardViewModel is the data passed to the dashboard template.
type DashboardViewModel struct {
	Username      string
	HasIncome     bool
	TotalIncome   float64
	HasExpenses   bool
	TotalExpenses float64
	Income        []models.IncomeEntry
	Expenses      []models.ExpenseEntry
	Budgets       []models.Budget
	Goals         []models.Goal
	Flash         string
}

// Dashboard renders the overview of income, expenses, budgets and goals.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	income, err := h.db.TotalIncome(user.ID)
	if err != nil {
		log.Errorf("total income: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}
	expenses, err := h.db.TotalExpenses(user.ID)
	if err != nil {
		log.Errorf("total expenses: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}
	incomeEntries, err := h.db.ListIncome(user.ID)
	if err != nil {
		log.Errorf("list income: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}
	expenseEntries, err := h.db.ListExpenses(user.ID)
	if err != nil {
		log.Errorf("list expenses: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}
	budgets, err := h.db.ListBudgets(user.ID)
	if err != nil {
		log.Errorf("list budgets: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}
	goals, err := h.db.ListGoals(user.ID)
	if err != nil {
		log.Errorf("list goals: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	h.render(w, "index.html", DashboardViewModel{
		Username:      user.Username,
		HasIncome:     income.Valid,
		TotalIncome:   income.Float64,
		HasExpenses:   expenses.Valid,
		TotalExpenses: expenses.Float64,
		Income:        incomeEntries,
		Expenses:      expenseEntries,
		Budgets:       budgets,
		Goals:         goals,
		Flash:         h.popFlash(w, r),
	})
}

// AddIncomeForm renders the income entry page.
func (h *Handlers) AddIncomeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add_income.html", nil)
}

// AddIncome handles the income form submission.
func (h *Handlers) AddIncome(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	amount, category, ok := h.parseEntryForm(w, r, "must provide amount and category")
	if !ok {
		return
	}

	if err := h.db.AddIncome(user.ID, amount, category); err != nil {
		log.Errorf("add income: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	h.setFlash(w, "Income added successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// AddExpenseForm renders the expense entry page.
func (h *Handlers) AddExpenseForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add_expense.html", nil)
}

// AddExpense handles the expense form submission.
func (h *Handlers) AddExpense(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	amount, category, ok := h.parseEntryForm(w, r, "must provide amount and category")
	if !ok {
		return
	}

	if err := h.db.AddExpense(user.ID, amount, category); err != nil {
		log.Errorf("add expense: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	h.setFlash(w, "Expense added successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// SetBudgetForm renders the budget page.
func (h *Handlers) SetBudgetForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "set_budget.html", nil)
}

// SetBudget handles the budget form submission. Budgets accumulate: a
// second budget for the same category adds a row, it does not replace.
func (h *Handlers) SetBudget(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	if err := r.ParseForm(); err != nil {
		h.apology(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	amountStr := strings.TrimSpace(r.FormValue("amount"))
	if category == "" || amountStr == "" {
		h.apology(w, "must provide category and amount", http.StatusBadRequest)
		return
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		h.apology(w, "amount must be a number", http.StatusBadRequest)
		return
	}

	if err := h.db.SetBudget(user.ID, category, amount); err != nil {
		log.Errorf("set budget: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	h.setFlash(w, "Budget set successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// SetGoalForm renders the savings goal page.
func (h *Handlers) SetGoalForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "set_goal.html", nil)
}

// SetGoal handles the savings goal form submission.
func (h *Handlers) SetGoal(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	if err := r.ParseForm(); err != nil {
		h.apology(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	targetStr := strings.TrimSpace(r.FormValue("target_amount"))
	deadline := strings.TrimSpace(r.FormValue("deadline"))
	if description == "" || targetStr == "" || deadline == "" {
		h.apology(w, "must provide all fields", http.StatusBadRequest)
		return
	}

	targetAmount, err := strconv.ParseFloat(targetStr, 64)
	if err != nil {
		h.apology(w, "target amount must be a number", http.StatusBadRequest)
		return
	}

	if err := h.db.SetGoal(user.ID, description, targetAmount, deadline); err != nil {
		log.Errorf("set goal: %v", err)
		h.apology(w, "an error occurred, please try again", http.StatusInternalServerError)
		return
	}

	h.setFlash(w, "Goal set successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// parseEntryForm extracts and validates the amount/category pair shared by
// the income and expense forms. On failure it has already written the
// apology and returns ok=false.
func (h *Handlers) parseEntryForm(w http.ResponseWriter, r *http.Request, missingMsg string) (float64, string, bool) {
	if err := r.ParseForm(); err != nil {
		h.apology(w, "invalid form submission", http.StatusBadRequest)
		return 0, "", false
	}

	amountStr := strings.TrimSpace(r.FormValue("amount"))
	category := strings.TrimSpace(r.FormValue("category"))
	if amountStr == "" || category == "" {
		h.apology(w, missingMsg, http.StatusBadRequest)
		return 0, "", false
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		h.apology(w, "amount must be a number", http.StatusBadRequest)
		return 0, "", false
	}

	return amount, category, true
}
