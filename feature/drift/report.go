package drift

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"wiring-guard/core/storage"
	"wiring-guard/feature/drift/checks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Document is the JSON form of a drift report.
type Document struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Source      string             `json:"source"`
	OK          bool               `json:"ok"`
	Checked     map[string]int     `json:"checked"`
	Violations  []checks.Violation `json:"violations"`
	Missing     []string           `json:"missing"`
}

// NewDocument builds the JSON document for a report.
func NewDocument(report *checks.Report, now time.Time) Document {
	return Document{
		GeneratedAt: now.UTC(),
		Source:      report.Source,
		OK:          report.OK(),
		Checked:     report.Checked,
		Violations:  report.Violations,
		Missing:     report.Lines(),
	}
}

// Filename returns the report file name, stamped with the generation time.
func (d Document) Filename() string {
	return fmt.Sprintf("drift_report_%d.json", d.GeneratedAt.Unix())
}

// Marshal encodes the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// SaveDocument writes the document into dir and returns the written path
// along with the encoded bytes.
func SaveDocument(fs afero.Fs, dir string, doc Document) (string, []byte, error) {
	data, err := doc.Marshal()
	if err != nil {
		return "", nil, err
	}

	name := filepath.Join(dir, doc.Filename())
	if err := afero.WriteFile(fs, name, data, 0644); err != nil {
		return "", nil, fmt.Errorf("failed to save report: %w", err)
	}
	return name, data, nil
}

// Publisher uploads drift reports to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a new report publisher.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Publish uploads an encoded report and returns its object key.
func (p *Publisher) Publish(ctx context.Context, doc Document, data []byte) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("bucket %s does not exist", p.bucket)
	}

	key := p.prefix + doc.Filename()
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		p.logger.Error("Failed to upload report", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	p.logger.Info("Report uploaded", zap.String("bucket", p.bucket), zap.String("key", key))
	return key, nil
}
