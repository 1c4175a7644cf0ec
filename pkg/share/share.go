package share

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
)

// Attachment is a generated document offered to a share channel.
type Attachment struct {
	FileName string
	Data     []byte
	Subject  string
	Body     string
}

// Sharer is the interface for handing a generated receipt to a
// system-level sharing mechanism. A failed Share is non-fatal: the
// caller falls back to direct download plus a mail-composition link.
type Sharer interface {
	// Share delivers the attachment through the channel.
	Share(att Attachment) error
	// Available returns true when the channel can accept attachments.
	Available() bool
}

// --- SMTP sharer (mails the PDF to a fixed recipient) ---

// SMTPConfig holds mail channel settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type smtpSharer struct {
	cfg SMTPConfig
}

// NewSMTPSharer creates a sharer that mails attachments via SMTP.
func NewSMTPSharer(cfg SMTPConfig) Sharer {
	return &smtpSharer{cfg: cfg}
}

func (s *smtpSharer) Share(att Attachment) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := buildMIMEMessage(s.cfg.From, s.cfg.To, att)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("share: failed to send mail via %s: %w", addr, err)
	}
	return nil
}

func (s *smtpSharer) Available() bool {
	return s.cfg.Host != "" && s.cfg.To != ""
}

// buildMIMEMessage assembles a multipart message with the PDF attached.
func buildMIMEMessage(from, to string, att Attachment) []byte {
	const boundary = "recibos-attachment"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", att.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(att.Body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: application/pdf\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", att.FileName)

	encoded := base64.StdEncoding.EncodeToString(att.Data)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	fmt.Fprintf(&b, "\r\n--%s--\r\n", boundary)

	return []byte(b.String())
}

// --- Directory sharer (drops the file into a shared folder) ---

type dirSharer struct {
	dir string
}

// NewDirSharer creates a sharer that copies attachments into a
// directory watched by an external tool.
func NewDirSharer(dir string) Sharer {
	return &dirSharer{dir: dir}
}

func (s *dirSharer) Share(att Attachment) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("share: failed to create share directory %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, att.FileName)
	if err := os.WriteFile(path, att.Data, 0o644); err != nil {
		return fmt.Errorf("share: failed to write %s: %w", path, err)
	}
	return nil
}

func (s *dirSharer) Available() bool {
	return s.dir != ""
}

// --- Null sharer (no channel configured) ---

type nullSharer struct{}

// NewNullSharer creates a sharer for environments without a channel;
// Share always reports unavailability so callers use the fallback.
func NewNullSharer() Sharer {
	return &nullSharer{}
}

func (s *nullSharer) Share(att Attachment) error {
	return fmt.Errorf("share: no share channel configured")
}

func (s *nullSharer) Available() bool {
	return false
}

// NewSharerFromConfig creates the appropriate Sharer based on type.
//
//	sharerType: "smtp", "dir", or "none"
func NewSharerFromConfig(sharerType, dir string, smtpCfg SMTPConfig) (Sharer, error) {
	switch sharerType {
	case "smtp":
		if smtpCfg.Host == "" || smtpCfg.To == "" {
			return nil, fmt.Errorf("share: SMTP host and recipient are required for smtp sharing")
		}
		return NewSMTPSharer(smtpCfg), nil
	case "dir":
		if dir == "" {
			return nil, fmt.Errorf("share: directory is required for dir sharing")
		}
		return NewDirSharer(dir), nil
	case "none", "":
		return NewNullSharer(), nil
	default:
		return nil, fmt.Errorf("share: unknown sharer type %q (use smtp, dir, or none)", sharerType)
	}
}
