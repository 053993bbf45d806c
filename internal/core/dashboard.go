package core

// Aggregate shapes returned by the dashboard queries.

type (
	// NameValue is a generic label/total pair for split charts.
	NameValue struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	// MonthTotal is one point of the monthly trend series.
	MonthTotal struct {
		Month string  `json:"month"` // YYYY-MM
		Total float64 `json:"total"`
	}

	// FutureExpense is a pending installment payment.
	FutureExpense struct {
		ID                 int64   `json:"id"`
		Item               string  `json:"item"`
		Amount             float64 `json:"amount"`
		NextPaymentDate    Date    `json:"nextPaymentDate"`
		ResponsibleParty   string  `json:"responsibleParty"`
		CurrentInstallment int     `json:"currentInstallment"`
		TotalInstallments  int     `json:"totalInstallments"`
	}

	// Dashboard bundles every aggregate the overview page renders.
	Dashboard struct {
		MonthTotal       float64         `json:"total"`
		MonthlyTrend     []MonthTotal    `json:"monthlyTrend"`
		FixedVsVariable  []NameValue     `json:"fixedVsVariable"`
		ExpensesByPerson []NameValue     `json:"expensesByPerson"`
		FutureExpenses   []FutureExpense `json:"futureExpenses"`
	}
)

// Unassigned is the label used when no responsible party was set.
const Unassigned = "Não atribuído"
