package boilerplate

// Catalogue returns the configured marketing pages.
func Catalogue() []Page {
	return []Page{
		{
			Slug:        "family-care",
			Title:       "Family Care Dashboard - Coordinate Health for Your Whole Family",
			Description: "Centralized family health dashboard for tracking multiple family members.",
			Keywords:    "family care, family health dashboard, care coordination",
			Gradient:    "from-green-600 via-emerald-600 to-teal-600",
			Features: []Feature{
				{"UserGroupIcon", "Multi-Patient Overview", "View health stats for all family members at once"},
				{"ChartBarIcon", "Aggregate Health Data", "See combined weight trends and meal logs across your family"},
				{"LockClosedIcon", "Privacy Controls", "Granular permissions per patient"},
			},
		},
		{
			Slug:        "appointments",
			Title:       "Appointment Scheduling - Never Miss a Doctor Visit",
			Description: "Schedule and manage healthcare appointments for your entire family.",
			Keywords:    "appointment scheduling, healthcare appointments, medical calendar",
			Gradient:    "from-pink-600 via-rose-600 to-red-600",
			Features: []Feature{
				{"CalendarIcon", "Appointment Calendar", "Visual calendar with all appointments color-coded"},
				{"BellAlertIcon", "Smart Reminders", "Notifications 7, 3, and 1 day before appointment time"},
				{"ArrowDownTrayIcon", "Calendar Export", "Export to Google Calendar, iCal, or Outlook"},
			},
		},
		{
			Slug:        "weight-tracking",
			Title:       "Weight Loss Progress Tracking - Visualize Your Journey",
			Description: "Track weight loss progress with interactive charts, goal setting, and trend analysis.",
			Keywords:    "weight tracking, weight loss tracker, progress charts",
			Gradient:    "from-violet-600 via-purple-600 to-fuchsia-600",
			Features: []Feature{
				{"ScaleIcon", "Quick Weight Logging", "Log weight in seconds with one-tap entry"},
				{"FlagIcon", "Goal Setting", "Set target weight and track progress percentage"},
				{"TrophyIcon", "Milestone Celebrations", "Achievement badges every 5, 10, 20 lbs lost"},
			},
		},
	}
}
