package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
)

// defaultTemplates are seeded at first run. initial_reply is flagged default
// and cannot be deleted through the API.
var defaultTemplates = []struct {
	name      string
	subject   string
	body      string
	isDefault bool
}{
	{
		name:    "initial_reply",
		subject: "Thank you for contacting Dr. Foscah Faith",
		body: `Dear {name},

Thank you for reaching out to me. I have received your message regarding {project_type}.

I will review your inquiry and get back to you within 24-48 hours.

Best regards,
Dr. Foscah Faith
Medical Consultant & Health Tech Specialist`,
		isDefault: true,
	},
	{
		name:    "follow_up",
		subject: "Follow-up on your inquiry",
		body: `Dear {name},

I wanted to follow up on your recent inquiry about {project_type}.

Please let me know if you have any further questions.

Best regards,
Dr. Foscah Faith`,
	},
	{
		name:    "project_accepted",
		subject: "Project Discussion - Next Steps",
		body: `Dear {name},

Thank you for your interest in working together on {project_type}.

I would like to schedule a call to discuss your project in more detail. Please let me know what times work best for you next week.

Looking forward to our conversation.

Best regards,
Dr. Foscah Faith`,
	},
}

// defaultContent holds the initial site copy, keyed by section. Values that
// look like JSON are decoded by the content API before being returned.
var defaultContent = map[string]string{
	"hero": `{"title": "Medical expertise for digital health.", "text": "I help health tech companies and healthcare organizations communicate clearly, build trust, and translate complex medical concepts into content that works."}`,
	"doctor": `{"name": "Dr. Foscah Faith", "specialty": "Medical Consultant & Health Tech Specialist"}`,
	"contact_intro": `I work with health tech companies, digital health platforms, healthcare organizations, and individual practitioners who need clear, accurate, and effective medical content.`,
	"about_section": `{"title": "From Clinical Training to Digital Health", "content": ["I trained as a doctor because I wanted to help people make better health decisions.", "After completing medical school, I chose a career at the intersection of medicine, technology, and communication.", "I work remotely with health tech startups, digital health platforms, and healthcare organizations to create content that is medically accurate, easy to understand, and built for real people."]}`,
	"services": `[{"title": "Medical & Healthcare Writing", "description": "Patient education content, condition explainers, treatment guides, health blog posts, and clinical summaries written for non-clinical audiences."}, {"title": "Health Tech Content & Product Communication", "description": "Product explainers, feature documentation, onboarding content, and help center articles."}, {"title": "Clinical Accuracy Review", "description": "Review of existing health content for medical accuracy, safety, and compliance."}, {"title": "Healthcare Education Content", "description": "Training materials, e-learning modules, and educational resources for patients, caregivers, or healthcare staff."}]`,
}

// Seed makes sure the database holds the data the application expects at
// first run: one operator account, the default reply templates, and the
// default site content. It is idempotent and safe to run at every startup.
func Seed(ctx context.Context, pool *pgxpool.Pool, defaultOperatorPassword string) error {
	operators := NewPgOperatorRepository(pool)
	n, err := operators.Count(ctx)
	if err != nil {
		return fmt.Errorf("count operators: %w", err)
	}
	if n == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultOperatorPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default operator password: %w", err)
		}
		op := &model.Operator{Username: "admin", PasswordHash: string(hash)}
		if err := operators.Create(ctx, op); err != nil {
			return fmt.Errorf("seed operator: %w", err)
		}
	}

	for _, t := range defaultTemplates {
		if _, err := pool.Exec(ctx,
			`INSERT INTO reply_templates (name, subject, body, is_default)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name) DO NOTHING`,
			t.name, t.subject, t.body, t.isDefault); err != nil {
			return fmt.Errorf("seed template %s: %w", t.name, err)
		}
	}

	for section, content := range defaultContent {
		if _, err := pool.Exec(ctx,
			`INSERT INTO site_content (section, content)
			 VALUES ($1, $2)
			 ON CONFLICT (section) DO NOTHING`,
			section, content); err != nil {
			return fmt.Errorf("seed content %s: %w", section, err)
		}
	}
	return nil
}
