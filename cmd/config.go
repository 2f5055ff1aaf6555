package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	MailerBaseURL     string
	MailerAPIKey      string
	MailerFrom        string
	AdminEmail        string
	ReminderSchedule  string
	ReminderOlderThan string
}
