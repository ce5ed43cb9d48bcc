package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"gopkg.in/yaml.v3"
)

//go:embed emails/*
var emailTemplates embed.FS

// EmailConfig holds email configuration from config.yaml
type EmailConfig struct {
	Branding struct {
		Name     string `yaml:"name"`
		Tagline  string `yaml:"tagline"`
		Website  string `yaml:"website"`
		AdminURL string `yaml:"admin_url"`
	} `yaml:"branding"`

	Design struct {
		PrimaryColor  string `yaml:"primary_color"`
		TextColor     string `yaml:"text_color"`
		MutedColor    string `yaml:"muted_color"`
		Background    string `yaml:"background"`
		WarningBg     string `yaml:"warning_bg"`
		WarningBorder string `yaml:"warning_border"`
		CodeBg        string `yaml:"code_bg"`
		BorderColor   string `yaml:"border_color"`
	} `yaml:"design"`

	Subjects struct {
		RecoveryCode string `yaml:"recovery_code"`
	} `yaml:"subjects"`

	RecoveryCode struct {
		Greeting      string `yaml:"greeting"`
		Intro         string `yaml:"intro"`
		ExpiryWarning string `yaml:"expiry_warning"`
		SecurityNote  string `yaml:"security_note"`
		IgnoreText    string `yaml:"ignore_text"`
	} `yaml:"recovery_code"`

	SMS struct {
		RecoveryCode string `yaml:"recovery_code"`
	} `yaml:"sms"`
}

// LoadEmailConfig loads email configuration from embedded config.yaml
func LoadEmailConfig() (*EmailConfig, error) {
	data, err := emailTemplates.ReadFile("emails/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read email config: %w", err)
	}

	var config EmailConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse email config: %w", err)
	}

	return &config, nil
}

// RecoveryCodeData holds data for the recovery code email template
type RecoveryCodeData struct {
	// Recipient
	Name string

	Code          string
	ExpiryMinutes int

	// Config-based data (populated from config.yaml)
	BrandName     string
	Tagline       string
	Website       string
	Greeting      string
	Intro         string
	ExpiryWarning string
	SecurityNote  string
	IgnoreText    string

	// Design colors
	PrimaryColor  string
	TextColor     string
	MutedColor    string
	WarningBg     string
	WarningBorder string
	CodeBg        string
	BorderColor   string
}

// RenderRecoveryCodeHTML renders the recovery code HTML template
func RenderRecoveryCodeHTML(data RecoveryCodeData) (string, error) {
	tmplData, err := emailTemplates.ReadFile("emails/recovery-code.html")
	if err != nil {
		return "", fmt.Errorf("failed to read recovery-code.html: %w", err)
	}

	tmpl, err := template.New("recovery-code").Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse recovery-code template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute recovery-code template: %w", err)
	}

	return buf.String(), nil
}

// RenderRecoveryCodeText renders the recovery code plain text template
func RenderRecoveryCodeText(data RecoveryCodeData) (string, error) {
	tmplData, err := emailTemplates.ReadFile("emails/recovery-code.txt")
	if err != nil {
		return "", fmt.Errorf("failed to read recovery-code.txt: %w", err)
	}

	tmpl, err := textTemplate.New("recovery-code-text").Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse recovery-code text template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute recovery-code text template: %w", err)
	}

	return buf.String(), nil
}
