package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

const activityQueueName = "todo.activity"

// BrokerURL returns the configured RabbitMQ URL, or empty when the
// broker integration is disabled.  Unlike a hardcoded localhost
// fallback, an unset URL means "no broker": publishers and the consumer
// stay quiet instead of retrying against a server that was never there.
func BrokerURL() string {
    if url := os.Getenv("RABBITMQ_URL"); url != "" {
        return url
    }
    return os.Getenv("AMQP_URL")
}

// StartActivityConsumer connects to RabbitMQ, declares the todo.activity
// queue (durable), and starts consuming messages. Each event is appended
// to logs/activity.log in a single-line, human-friendly format. The
// function runs a reconnect loop and keeps running through broker
// restarts, logging processing errors and rejecting the offending
// message so the server continues operating. It returns immediately when
// no broker URL is configured.
func StartActivityConsumer() error {
    url := BrokerURL()
    if url == "" {
        log.Printf("activity-consumer: no broker configured, consumer disabled")
        return nil
    }

    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("activity-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn); err != nil {
            log.Printf("activity-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
            continue
        }
    }
}

func consumeLoop(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("activity-consumer: set QoS failed: %v", err)
    }

    _, err = ch.QueueDeclare(activityQueueName, true, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(activityQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(d.Body); err != nil {
            log.Printf("activity-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
    var ev ActivityEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    // Ensure logs directory exists
    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    fpath := filepath.Join("logs", "activity.log")
    f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    var line string
    switch ev.Type {
    case ActivityTodoCompleted:
        line = fmt.Sprintf("[%s] %s | user_id=%d | email=%s | todo_id=%d | text=%q\n",
            ev.At, ev.Type, ev.UserID, ev.Email, ev.TodoID, ev.Text)
    default:
        line = fmt.Sprintf("[%s] %s | user_id=%d | email=%s\n",
            ev.At, ev.Type, ev.UserID, ev.Email)
    }

    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}
