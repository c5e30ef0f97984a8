package constants

// Goal is a training goal accepted by the routine generator.
type Goal string

// MealGoal is the body-weight goal used by the meal planner.
type MealGoal string

// MealName identifies one of the four daily meal slots.
type MealName string

// SessionState represents the current view of the TUI application
type SessionState int

const (
	AppName            = "fitfinder"
	DefaultConfigPath  = "~/.config/fitfinder/fitfinder.db"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Environment variables
	EnvConfig       = "FITFINDER_CONFIG"
	EnvDBConnection = "FITFINDER_DB_CONNECTION"
	EnvCatalogDir   = "FITFINDER_CATALOG_DIR"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "fitfinder-"
	BackupFileSuffix = ".db"

	// Storage keys
	KeyFavorites   = "fitfinder_favorites_v1"
	KeyLastRoutine = "fitfinder_last_routine"
	KeyMealPlans   = "fitfinder_mealplans_v2"
	KeyWorkouts    = "fitfinder_workouts_v2"
	KeySettings    = "fitfinder_settings_v1"

	// Retention limits
	MaxSavedMealPlans = 12
	MaxWorkoutEntries = 1000

	// Catalog pagination
	DefaultPageSize = 200
	MaxSuggestions  = 8

	// Training goals
	GoalMuscleGain Goal = "muscle-gain"
	GoalStrength   Goal = "strength"
	GoalEndurance  Goal = "endurance"
	GoalFatLoss    Goal = "fat-loss"

	// Meal goals
	MealGoalLose     MealGoal = "lose"
	MealGoalMaintain MealGoal = "maintain"
	MealGoalGain     MealGoal = "gain"

	// Meal slots
	MealBreakfast MealName = "breakfast"
	MealLunch     MealName = "lunch"
	MealDinner    MealName = "dinner"
	MealSnacks    MealName = "snacks"

	// Activity levels
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"

	// Diet and cuisine preferences
	DietVeg        = "veg"
	DietNonVeg     = "nonveg"
	DietBoth       = "both"
	CuisineAny     = "any"
	CuisineIndian  = "indian"
	CuisineWestern = "western"

	// Default routine inputs
	DefaultDaysPerWeek   = 4
	DefaultDurationWeeks = 4
)

// Session States
const (
	StateExplore SessionState = iota
	StateRoutine
	StateLog
	StateAddLog
	StateConfirmDelete
	StateFilters
)

// Weekdays is the fixed key order of a weekly meal plan.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MealOrder is the fixed slot order of every day in a weekly meal plan.
var MealOrder = []MealName{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// Goals lists the training goals in display order.
var Goals = []Goal{GoalMuscleGain, GoalStrength, GoalEndurance, GoalFatLoss}
