package metrics

var (
	today           = Window{Kind: Today}
	lastWeek        = Window{Kind: LastDays, Days: 7}
	lastThirtyDays  = Window{Kind: LastDays, Days: 30}
	nextFiveDays    = Window{Kind: NextDays, Days: 5}
	nextMonth       = Window{Kind: NextMonth}
	previousMonth   = Window{Kind: PreviousMonth}
	previousISOWeek = Window{Kind: PreviousISOWeek}
	future          = Window{Kind: Future}
)

// DefaultDefinitions returns the metrics served by the gateway, in route registration order
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Key:   "end100",
			Label: "Total Signups (All-Time)",
			Shape: ShapeCount,
			Query: "SELECT COUNT(*) FROM users",
		},
		{
			Key:     "end200",
			Label:   "Signups Last Calendar Month",
			Shape:   ShapeCount,
			Query:   "SELECT COUNT(*) FROM users WHERE registered >= ? AND registered < ?",
			Windows: []Window{previousMonth},
		},
		{
			Key:     "end300",
			Label:   "Signups Today",
			Shape:   ShapeCount,
			Query:   "SELECT COUNT(*) FROM users WHERE registered >= ? AND registered < ?",
			Windows: []Window{today},
		},
		{
			Key:   "end400",
			Label: "Signups Per Day (Last 7 Days)",
			Shape: ShapeTrend,
			Query: `SELECT DATE(registered) AS signup_date, COUNT(*) AS daily_signups
				FROM users
				WHERE registered >= ? AND registered <= ?
				GROUP BY DATE(registered)
				ORDER BY signup_date DESC`,
			Windows: []Window{lastWeek},
		},
		{
			Key:     "end1",
			Label:   "Active Users",
			Shape:   ShapeCount,
			Query:   "SELECT COUNT(*) FROM users WHERE subscription_end > ?",
			Windows: []Window{future},
		},
		{
			Key:         "end2",
			Label:       "Subscriptions Ending Next Month",
			Description: "Users whose subscription will expire within the next 1 calendar month (30 days ahead).",
			Summary:     "Subscriptions ending in the next month (users whose subscription will expire within the next 1 calendar month).",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM users WHERE subscription_end BETWEEN ? AND ?",
			Windows:     []Window{nextMonth},
		},
		{
			Key:         "end3",
			Label:       "Subscriptions Ending in 5 Days",
			Description: "Urgent monitoring of subscriptions expiring soon for retention or renewal reminders.",
			Summary:     "Subscriptions ending in the next 5 days (urgent monitoring for retention/reminders).",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM users WHERE subscription_end BETWEEN ? AND ?",
			Windows:     []Window{nextFiveDays},
		},
		{
			Key:         "end4",
			Label:       "Users Registered Last 7 Days",
			Description: "Measures new user acquisition in the past week.",
			Summary:     "Users registered within the last 7 days (new user acquisition in the past week).",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM users WHERE registered >= ? AND registered <= ?",
			Windows:     []Window{lastWeek},
		},
		{
			Key:         "end5",
			Label:       "Free Trials Ending Today",
			Description: "Tracks users who are just finishing their trial window today.",
			Summary:     "Users on free trial ending today (users finishing their trial window today).",
			Shape:       ShapeCount,
			Query: `SELECT COUNT(*) FROM users
				WHERE subscription_end >= ? AND subscription_end < ?
				  AND registered >= ? AND registered <= ?`,
			Windows: []Window{today, lastWeek},
		},
		{
			Key:         "end6",
			Label:       "Subscriptions Requested Today",
			Description: "Measures today's incoming subscription activity (e.g., new leads or pending conversions).",
			Summary:     "Subscriptions requested today (today's incoming subscription activity).",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM subscriptions WHERE registered >= ? AND registered < ?",
			Windows:     []Window{today},
		},
		{
			Key:         "end7",
			Label:       "Subscriptions Requested Last 7 Days",
			Description: "Monitors recent interest or intent to subscribe.",
			Summary:     "Subscriptions requested in the last 7 days (recent interest or intent to subscribe).",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM subscriptions WHERE registered >= ? AND registered <= ?",
			Windows:     []Window{lastWeek},
		},
		{
			Key:         "end8",
			Label:       "Subscriptions Requested Last Month",
			Description: "Calculates the number of subscription intents made during the previous calendar month.",
			Summary:     "Subscriptions requested last month (number of subscription intents made during the previous calendar month).",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM subscriptions WHERE registered >= ? AND registered < ?",
			Windows:     []Window{previousMonth},
		},
		{
			Key:         "end9",
			Label:       "Endpoint Meanings",
			Shape:       ShapeCatalog,
			CatalogKeys: []string{"end2", "end3", "end4", "end5", "end6", "end7", "end8"},
		},
		staticDefinition("end10", "Conversion Rate", "Trial to paid subscription conversion.", "24.7%"),
		staticDefinition("end11", "Customer Satisfaction", "Average user rating and feedback.", "4.8/5"),
		staticDefinition("end12", "System Uptime", "Service availability last 30 days.", "99.9%"),
		staticDefinition("end13", "Response Time", "Average API response latency.", "0.8s"),
		staticDefinition("end14", "User Engagement", "Daily active user interaction rate.", "87.3%"),
		staticDefinition("end15", "Storage Usage", "Current database storage utilization.", "456GB"),
		staticDefinition("end16", "Error Rate", "System error percentage last 24h.", "0.02%"),
		{
			Key:                "end17",
			Label:              "Trial To Paid Conversion (Last 30 Days)",
			Description:        "Paid subscriptions divided by signups over the last 30 days.",
			Shape:              ShapeRatio,
			Query:              "SELECT COUNT(*) FROM subscriptions WHERE status = 'paid' AND paid_at >= ? AND paid_at <= ?",
			Windows:            []Window{lastThirtyDays},
			DenominatorQuery:   "SELECT COUNT(*) FROM users WHERE registered >= ? AND registered <= ?",
			DenominatorWindows: []Window{lastThirtyDays},
		},
		{
			Key:         "end18",
			Label:       "Signups Last ISO Week",
			Description: "Users registered during the previous Monday to Sunday week.",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM users WHERE registered >= ? AND registered < ?",
			Windows:     []Window{previousISOWeek},
		},
		{
			Key:         "end19",
			Label:       "Paid Subscriptions Last 7 Days",
			Description: "Subscriptions marked as paid during the past week.",
			Shape:       ShapeCount,
			Query:       "SELECT COUNT(*) FROM subscriptions WHERE status = 'paid' AND paid_at >= ? AND paid_at <= ?",
			Windows:     []Window{lastWeek},
		},
	}
}

func staticDefinition(key string, label string, description string, value any) Definition {
	return Definition{
		Key:         key,
		Label:       label,
		Description: description,
		Shape:       ShapeStatic,
		Static:      value,
	}
}
