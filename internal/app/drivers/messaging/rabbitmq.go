package messaging

import (
	"fmt"
	"log"
	"petgromee-web/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker and declares the booking event queue. Booking
// events are best effort, so a broker that cannot be reached yields a nil
// connection instead of stopping the server.
func NewRabbitMQ(driverConfig *config.DriverConfig, queue string) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Printf("Failed to connect to rabbitMQ, booking events are disabled: %s", err.Error())
		return nil
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Printf("Failed to open rabbitMQ channel, booking events are disabled: %s", err.Error())
		conn.Close()
		return nil
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		log.Printf("Failed to declare rabbitMQ queue %s, booking events are disabled: %s", queue, err.Error())
		conn.Close()
		return nil
	}

	log.Println("Successfully connected to rabbitMQ")
	return conn
}
