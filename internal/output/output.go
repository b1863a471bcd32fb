package output

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/chrisdamba/burgerbar/internal/models"
)

// Destination receives serialized order events. Implementations exist for
// console, newline-delimited JSON files, parquet (local or S3), Kafka and
// Postgres.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	// Try to sync, but don't return an error if it fails
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		fullPath := filepath.Join(j.basePath, j.folder)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(fullPath, topic+".json"))
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		j.files[topic] = file
	}

	// keep one JSON document per line
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}
	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := file.Write(jsonData); err != nil {
		return err
	}
	_, err = file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Determine selects the output destination from config the same way the
// ordering session and the simulate command both do. Wiring failures are
// fatal: an order flow without its configured sink is misconfigured.
func Determine(cfg *models.Config) Destination {
	if cfg.KafkaEnabled || cfg.OutputDestination == "kafka" {
		producer, err := NewKafkaOutput(cfg)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		return producer
	}

	switch cfg.OutputDestination {
	case "", "console":
		return &ConsoleOutput{}
	case "json":
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder)
	case "parquet":
		out, err := NewParquetOutput(cfg)
		if err != nil {
			log.Fatalf("Failed to create Parquet output: %s", err)
		}
		return out
	case "postgres":
		out, err := NewPostgresOutput(context.Background(), &cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect Postgres output: %s", err)
		}
		return out
	default:
		log.Fatalf("Unsupported output destination: %s", cfg.OutputDestination)
		return nil
	}
}
