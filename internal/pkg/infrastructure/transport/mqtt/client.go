package mqtt

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	paho "github.com/eclipse/paho.mqtt.golang"
)

// MessageHandler receives the raw payload of one message on a subscribed
// topic. Handlers must contain their own failures, a panic or error inside a
// handler must never break the subscription.
type MessageHandler func(ctx context.Context, topic string, payload []byte)

type Config struct {
	BrokerURL string `yaml:"brokerUrl"`
	ClientID  string `yaml:"clientId"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

type Client struct {
	conn paho.Client
}

const connectTimeout = 10 * time.Second

// Connect dials the broker and blocks until the connection is up or the
// timeout expires. Reconnection after a lost connection is handled by the
// paho client itself.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	log := logging.GetFromContext(ctx)

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Warn("lost connection to mqtt broker", "err", err.Error())
	})
	opts.SetOnConnectHandler(func(paho.Client) {
		log.Info("connected to mqtt broker", "broker", cfg.BrokerURL)
	})

	conn := paho.NewClient(opts)

	token := conn.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to mqtt broker %s", cfg.BrokerURL)
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to mqtt broker: %w", token.Error())
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Subscribe(ctx context.Context, topic string, qos byte, handler MessageHandler) error {
	log := logging.GetFromContext(ctx)

	token := c.conn.Subscribe(topic, qos, func(_ paho.Client, msg paho.Message) {
		handler(ctx, msg.Topic(), msg.Payload())
	})

	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, token.Error())
	}

	log.Info("subscribed to topic", "topic", topic)

	return nil
}

func (c *Client) Close() {
	c.conn.Disconnect(250)
}
