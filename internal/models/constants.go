package models

// Categories
const (
	CategoryOther         = "Other"
	CategoryIncome        = "Income"
	CategoryHousing       = "Housing & Utilities"
	CategoryBankFees      = "Bank Fees"
	CategoryShopping      = "Shopping"
	CategoryGroceries     = "Food & Groceries"
	CategoryTransport     = "Transportation"
	CategoryDining        = "Restaurants & Cafes"
	CategorySubscriptions = "Entertainment & Subscriptions"
	CategoryInsurance     = "Insurance"
	CategoryHealth        = "Health & Pharmacy"
	CategoryCash          = "Cash Withdrawal"
	CategoryTravel        = "Travel"
)

// Classification thresholds
const (
	// AutoAssignThreshold is the confidence above which a category is set
	// without human confirmation.
	AutoAssignThreshold = 0.8
	// ReviewThreshold is the confidence below which a classification is
	// flagged for manual correction.
	ReviewThreshold = 0.7
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)
