package cmd

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	KafkaHost                string
	KafkaConsumerGroup       string
	KafkaPriceChangedTopic   string
	RedisHost                string
	MenusCacheTTL            string
	MenuRevalidationSchedule string
	CourierServiceURL        string
}
