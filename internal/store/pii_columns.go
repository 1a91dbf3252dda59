package store

// PIIColumn names a PII column and where its row lives.
type PIIColumn struct {
	Table    string
	IDColumn string
	Column   string

	// HashColumn is the lookup-hash companion column, empty if the field is
	// never searched by equality.
	HashColumn string
}

var (
	UserEmail         = PIIColumn{Table: "users", IDColumn: "user_id", Column: "email", HashColumn: "email_hash"}
	UserDisplayName   = PIIColumn{Table: "users", IDColumn: "user_id", Column: "display_name"}
	UserPhone         = PIIColumn{Table: "users", IDColumn: "user_id", Column: "phone"}
	UserMonthlyBudget = PIIColumn{Table: "users", IDColumn: "user_id", Column: "monthly_budget"}

	ContactCompany = PIIColumn{Table: "contacts", IDColumn: "id", Column: "company"}
	ContactName    = PIIColumn{Table: "contacts", IDColumn: "id", Column: "contact_name"}
	ContactEmail   = PIIColumn{Table: "contacts", IDColumn: "id", Column: "email", HashColumn: "email_hash"}
	ContactPhone   = PIIColumn{Table: "contacts", IDColumn: "id", Column: "phone"}
)

// UserPIIColumns lists every PII column of the users table.
var UserPIIColumns = []PIIColumn{UserEmail, UserDisplayName, UserPhone, UserMonthlyBudget}

// ContactPIIColumns lists every PII column of the contacts table.
var ContactPIIColumns = []PIIColumn{ContactCompany, ContactName, ContactEmail, ContactPhone}

// updatableUserColumns are the columns UpdateUserFields accepts.
var updatableUserColumns = map[string]struct{}{
	"email":          {},
	"email_hash":     {},
	"display_name":   {},
	"phone":          {},
	"monthly_budget": {},
}
