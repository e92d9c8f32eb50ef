package registry

import "github.com/suryansh-23/secretsieve/internal/types"

// gitlabBoundary stands in for a look-behind: the token must start the text or
// follow a non-word character. The token itself is capture group 1.
const gitlabBoundary = `(?:^|[^A-Za-z0-9_])`

var (
	crc32Checksum = ValidatorSpec{Kind: types.ValidatorChecksum, Algorithm: types.ChecksumCRC32Base62}
	tierEntropy   = ValidatorSpec{Kind: types.ValidatorEntropy}
)

// Defaults returns the built-in catalog.
func Defaults() []Definition {
	return []Definition{
		{
			ID:          "aws_access_key",
			Vendor:      "aws",
			Description: "AWS Access Key ID",
			Pattern:     `(?:AKIA|ASIA|ABIA|ACCA)[0-9A-Z]{16}`,
			Keywords:    []string{"akia", "asia", "abia", "acca"},
			Tier:        types.TierHigh,
			Validators: []ValidatorSpec{
				{Kind: types.ValidatorChecksum, Algorithm: types.ChecksumAWSKeyID},
			},
		},
		{
			ID:          "aws_secret_key",
			Vendor:      "aws",
			Description: "AWS Secret Access Key",
			Pattern:     `(?i)\baws_?secret_?(?:access_?)?key["']?\s*[:=]\s*["']?([A-Za-z0-9/+]{40})(?:[^A-Za-z0-9/+=]|$)`,
			Group:       1,
			Keywords:    []string{"aws_secret", "awssecret"},
			Tier:        types.TierMedium,
			Validators:  []ValidatorSpec{tierEntropy},
		},
		{
			ID:          "anthropic_api_key",
			Vendor:      "anthropic",
			Description: "Anthropic API Key",
			Pattern:     `\bsk-ant-api\d{2}-[A-Za-z0-9_\-]{32,128}`,
			Keywords:    []string{"sk-ant-api"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "anthropic_admin_key",
			Vendor:      "anthropic",
			Description: "Anthropic Admin API Key",
			Pattern:     `\bsk-ant-admin\d{2}-[A-Za-z0-9_\-]{32,128}`,
			Keywords:    []string{"sk-ant-admin"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "openai_api_key",
			Vendor:      "openai",
			Description: "OpenAI API Key",
			Pattern:     `\bsk-(?:proj-|svcacct-|admin-)?[A-Za-z0-9_\-]{20,74}T3BlbkFJ[A-Za-z0-9_\-]{20,74}`,
			Keywords:    []string{"t3blbkfj"},
			Tier:        types.TierHigh,
		},
		// Stripe bodies are either the legacy 24 characters or the current 99.
		{
			ID:          "stripe_live_key",
			Vendor:      "stripe",
			Description: "Stripe Access Key",
			Pattern:     `sk_live_[0-9a-zA-Z]{24}(?:[0-9a-zA-Z]{75})?`,
			Keywords:    []string{"sk_live_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "stripe_restricted_key",
			Vendor:      "stripe",
			Description: "Stripe Restricted Key",
			Pattern:     `rk_(?:live|test)_[0-9a-zA-Z]{24}(?:[0-9a-zA-Z]{75})?`,
			Keywords:    []string{"rk_live_", "rk_test_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "stripe_test_key",
			Vendor:      "stripe",
			Description: "Stripe Test Key",
			Pattern:     `sk_test_[0-9a-zA-Z]{24}(?:[0-9a-zA-Z]{75})?`,
			Keywords:    []string{"sk_test_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "stripe_webhook_secret",
			Vendor:      "stripe",
			Description: "Stripe Webhook Signing Secret",
			Pattern:     `\bwhsec_[A-Za-z0-9]{32}\b`,
			Keywords:    []string{"whsec_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "github_pat",
			Vendor:      "github",
			Description: "GitHub Personal Access Token",
			Pattern:     `\bghp_[A-Za-z0-9]{36}\b`,
			Keywords:    []string{"ghp_"},
			Tier:        types.TierHigh,
			Validators:  []ValidatorSpec{crc32Checksum},
		},
		{
			ID:          "github_oauth_token",
			Vendor:      "github",
			Description: "GitHub OAuth Access Token",
			Pattern:     `\bgho_[A-Za-z0-9]{36}\b`,
			Keywords:    []string{"gho_"},
			Tier:        types.TierHigh,
			Validators:  []ValidatorSpec{crc32Checksum},
		},
		{
			ID:          "github_app_token",
			Vendor:      "github",
			Description: "GitHub App Token",
			Pattern:     `\bgh[us]_[A-Za-z0-9]{36}\b`,
			Keywords:    []string{"ghu_", "ghs_"},
			Tier:        types.TierHigh,
			Validators:  []ValidatorSpec{crc32Checksum},
		},
		{
			ID:          "github_fine_grained_pat",
			Vendor:      "github",
			Description: "GitHub Fine-Grained Personal Access Token",
			Pattern:     `\bgithub_pat_[A-Za-z0-9]{22}_[A-Za-z0-9]{59}\b`,
			Keywords:    []string{"github_pat_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "gitlab_token",
			Vendor:      "gitlab",
			Description: "GitLab Token",
			Pattern:     gitlabBoundary + `((?:glpat|gldt|glft|glsoat|glrt)-[A-Za-z0-9_\-]{20,50}|GR1348941[A-Za-z0-9_\-]{20,50})`,
			Group:       1,
			Keywords:    []string{"glpat-", "gldt-", "glft-", "glsoat-", "glrt-", "gr1348941"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "gitlab_cicd_token",
			Vendor:      "gitlab",
			Description: "GitLab CI/CD Job Token",
			Pattern:     gitlabBoundary + `(glcbt-(?:[0-9a-fA-F]{2}_)?[A-Za-z0-9_\-]{20,50})`,
			Group:       1,
			Keywords:    []string{"glcbt-"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "gitlab_incoming_mail_token",
			Vendor:      "gitlab",
			Description: "GitLab Incoming Mail Token",
			Pattern:     gitlabBoundary + `(glimt-[A-Za-z0-9_\-]{25})`,
			Group:       1,
			Keywords:    []string{"glimt-"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "gitlab_trigger_token",
			Vendor:      "gitlab",
			Description: "GitLab Pipeline Trigger Token",
			Pattern:     gitlabBoundary + `(glptt-[A-Za-z0-9_\-]{40})`,
			Group:       1,
			Keywords:    []string{"glptt-"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "gitlab_agent_token",
			Vendor:      "gitlab",
			Description: "GitLab Agent Token",
			Pattern:     gitlabBoundary + `(glagent-[A-Za-z0-9_\-]{50,1000}[A-Za-z0-9_\-]{0,24})`,
			Group:       1,
			Keywords:    []string{"glagent-"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "gitlab_oauth_secret",
			Vendor:      "gitlab",
			Description: "GitLab OAuth Application Secret",
			Pattern:     gitlabBoundary + `(gloas-[A-Za-z0-9_\-]{64})`,
			Group:       1,
			Keywords:    []string{"gloas-"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "slack_token",
			Vendor:      "slack",
			Description: "Slack Token",
			Pattern:     `xox[abposr]-(?:\d+-)+[a-z0-9]+`,
			Keywords:    []string{"xox"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "slack_webhook",
			Vendor:      "slack",
			Description: "Slack Incoming Webhook",
			Pattern:     `https://hooks\.slack\.com/services/T[a-zA-Z0-9_]+/B[a-zA-Z0-9_]+/[a-zA-Z0-9_]+`,
			Keywords:    []string{"hooks.slack.com"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "digitalocean_token",
			Vendor:      "digitalocean",
			Description: "DigitalOcean API Key",
			Pattern:     `\b(?:dop|doo|dor)_v1_[a-f0-9]{64}\b`,
			Keywords:    []string{"dop_v1_", "doo_v1_", "dor_v1_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "twilio_account_sid",
			Vendor:      "twilio",
			Description: "Twilio Account SID",
			Pattern:     `\bAC[a-z0-9]{32}\b`,
			Tier:        types.TierMedium,
		},
		{
			ID:          "twilio_api_key",
			Vendor:      "twilio",
			Description: "Twilio API Key",
			Pattern:     `\bSK[a-z0-9]{32}\b`,
			Tier:        types.TierMedium,
		},
		{
			ID:          "discord_bot_token",
			Vendor:      "discord",
			Description: "Discord Bot Token",
			Pattern:     `[MNO][a-zA-Z\d_-]{23,25}\.[a-zA-Z\d_-]{6}\.[a-zA-Z\d_-]{27}`,
			Tier:        types.TierMedium,
		},
		{
			ID:          "npm_token",
			Vendor:      "npm",
			Description: "NPM Token",
			Pattern:     `//[^\s]+/:_authToken=\s*(npm_[A-Za-z0-9]+|[A-Fa-f0-9-]{36})`,
			Group:       1,
			Keywords:    []string{"_authtoken"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "npm_access_token",
			Vendor:      "npm",
			Description: "npm.js Access Token",
			Pattern:     `\bnpm_[A-Za-z0-9]{36}\b`,
			Keywords:    []string{"npm_"},
			Tier:        types.TierHigh,
			Validators:  []ValidatorSpec{crc32Checksum},
		},
		{
			ID:          "pypi_token",
			Vendor:      "pypi",
			Description: "PyPI Token",
			Pattern:     `pypi-AgEIcHlwaS5vcmc[A-Za-z0-9\-_]{70,}|pypi-AgENdGVzdC5weXBpLm9yZw[A-Za-z0-9\-_]{70,}`,
			Keywords:    []string{"pypi-"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "basic_auth",
			Vendor:      "basic_auth",
			Description: "Basic Auth Credentials",
			Pattern:     `://[^:/?#\[\]@!'()*+,;=\s]+:([^:/?#\[\]@!'()*+,;=\s]+)@`,
			Group:       1,
			Keywords:    []string{"://"},
			Tier:        types.TierMedium,
			Validators: []ValidatorSpec{
				{Kind: types.ValidatorContext, Exclude: []string{"${", "{{", "<", "%s", "****"}},
			},
		},
		{
			ID:          "private_key",
			Vendor:      "private_key",
			Description: "Private Key Block",
			Pattern:     `-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP |ENCRYPTED )?PRIVATE KEY(?: BLOCK)?-----`,
			Keywords:    []string{"-----begin"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "jwt",
			Vendor:      "jwt",
			Description: "JSON Web Token",
			Pattern:     `\beyJ[A-Za-z0-9_-]{8,}\.eyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]+`,
			Keywords:    []string{"eyj"},
			Tier:        types.TierMedium,
			Validators: []ValidatorSpec{
				{Kind: types.ValidatorChecksum, Algorithm: types.ChecksumJWTHeader},
			},
		},
		{
			ID:          "google_api_key",
			Vendor:      "google",
			Description: "Google API Key",
			Pattern:     `AIza[0-9A-Za-z_\-]{35}`,
			Keywords:    []string{"aiza"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "sendgrid_api_key",
			Vendor:      "sendgrid",
			Description: "SendGrid API Key",
			Pattern:     `\bSG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}`,
			Keywords:    []string{"sg."},
			Tier:        types.TierHigh,
		},
		{
			ID:          "huggingface_token",
			Vendor:      "huggingface",
			Description: "Hugging Face Access Token",
			Pattern:     `\bhf_[A-Za-z]{34}\b`,
			Keywords:    []string{"hf_"},
			Tier:        types.TierHigh,
		},
		{
			ID:          "evm_private_key",
			Vendor:      "web3",
			Description: "EVM Private Key",
			Pattern:     `\b0x[0-9a-fA-F]{64}\b`,
			Keywords:    []string{"0x"},
			Tier:        types.TierMedium,
			Validators: []ValidatorSpec{
				{Kind: types.ValidatorContext, Require: []string{"private_key", "private-key", "privatekey", "secret", "wallet", "sk="}},
			},
		},
		{
			ID:          "generic_api_key",
			Vendor:      "generic",
			Description: "Generic API Key Assignment",
			Pattern:     `(?i)(?:api[_-]?key|secret[_-]?key|client[_-]?secret|access[_-]?token|auth[_-]?token)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})`,
			Group:       1,
			Keywords:    []string{"key", "secret", "token"},
			Tier:        types.TierLow,
			Validators: []ValidatorSpec{
				tierEntropy,
				{Kind: types.ValidatorContext, Exclude: []string{"example", "placeholder", "changeme", "dummy", "xxxxxxxx", "your_", "your-"}},
			},
		},
	}
}
