package services

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
)

// DefaultFAQs is the help content shown on the login page.
var DefaultFAQs = []models.FAQ{
	{ID: "1", Question: "How do I view daily or monthly sales reports?",
		Answer: `Open the "Reports" section of your dashboard and pick the date filter you need.`},
	{ID: "2", Question: "Can I download reports as Excel or PDF?",
		Answer: "Yes. Every report page has a download icon for both formats."},
	{ID: "3", Question: "My report does not show up or is not updated. What should I do?",
		Answer: "Check that your connection is stable and refresh the page. If it persists, contact support through the chat."},
	{ID: "4", Question: "Does the system show stock in real time?",
		Answer: "Yes, stock data is shown in real time so you always see the latest figures."},
	{ID: "5", Question: "How long is data kept? Is there an archive limit?",
		Answer: "Data is kept for 5 years and then archived automatically. Archived data is available on request."},
	{ID: "6", Question: "How do I change my password?",
		Answer: `Open "Profile" in the top right corner, choose "Edit Profile" and use the "Change Password" section.`},
	{ID: "7", Question: "Is there a user guide?",
		Answer: `Yes, the full guide is under "Help" or "Documentation" on your dashboard.`},
}

type FAQService struct {
	faqs []models.FAQ
}

func NewFAQService(faqs []models.FAQ) *FAQService {
	return &FAQService{faqs: faqs}
}

// Search returns the entries whose question or answer contains term,
// ignoring case. An empty term returns everything.
func (s *FAQService) Search(term string) []models.FAQ {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.FAQ, 0, len(s.faqs))
	for _, f := range s.faqs {
		if term == "" ||
			strings.Contains(strings.ToLower(f.Question), term) ||
			strings.Contains(strings.ToLower(f.Answer), term) {
			out = append(out, f)
		}
	}
	return out
}
