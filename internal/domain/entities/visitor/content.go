package visitor

// TestimonialPriority orders social-proof sections for a segment.
type TestimonialPriority string

const (
	PrioritySocialProof TestimonialPriority = "social-proof"
	PriorityFeatures    TestimonialPriority = "features"
	PriorityResults     TestimonialPriority = "results"
)

// ContentBundle holds every personalized string the UI renders for one
// visitor segment: hero copy, CTAs, contact form copy, dashboard copy and
// navigation labels.
type ContentBundle struct {
	Headline         string `json:"headline"`
	Subheadline      string `json:"subheadline"`
	CTAText          string `json:"ctaText"`
	CTASecondaryText string `json:"ctaSecondaryText"`
	ValueProposition string `json:"valueProposition"`
	UrgencyMessage   string `json:"urgencyMessage"`
	SocialProof      string `json:"socialProof"`
	FeatureHighlight string `json:"featureHighlight"`

	ContactHeadline    string `json:"contactHeadline"`
	ContactSubheadline string `json:"contactSubheadline"`
	ContactCTA         string `json:"contactCTA"`

	DashboardGreeting   string `json:"dashboardGreeting"`
	DashboardMotivation string `json:"dashboardMotivation"`
	DashboardTip        string `json:"dashboardTip"`

	TestimonialPriority TestimonialPriority `json:"testimonialPriority"`
	NavCTA              string              `json:"navCTA"`
}

var contentByVisitorType = map[VisitorType]ContentBundle{
	VisitorNew: {
		Headline:            "Transform Your Images Into Viral Content",
		Subheadline:         "Upload any image and get 3-5 engaging social media captions instantly. Powered by Google Gemini AI with professional tone options.",
		CTAText:             "Try It Free",
		CTASecondaryText:    "See How It Works",
		ValueProposition:    "Join thousands of creators already boosting their content",
		UrgencyMessage:      "",
		SocialProof:         "Join 10,000+ creators",
		FeatureHighlight:    "AI-Powered Content Creation",
		ContactHeadline:     "Let's Connect",
		ContactSubheadline:  "Have questions or ideas? We'd love to hear from you.",
		ContactCTA:          "Send Message",
		DashboardGreeting:   "Welcome to Ad Atelier AI!",
		DashboardMotivation: "Let's create your first viral caption together.",
		DashboardTip:        "Start by uploading an image to generate AI-powered captions.",
		TestimonialPriority: PrioritySocialProof,
		NavCTA:              "Get Started",
	},
	VisitorExplorer: {
		Headline:            "Discover the Power of AI Captions",
		Subheadline:         "Curious how AI can transform your social media game? Upload any image and watch the magic happen — no commitment required.",
		CTAText:             "Explore the Tool",
		CTASecondaryText:    "Watch Demo",
		ValueProposition:    "See why creators love our simple, powerful approach",
		UrgencyMessage:      "",
		SocialProof:         "Trusted by content creators worldwide",
		FeatureHighlight:    "Easy to Start, Powerful Results",
		ContactHeadline:     "Curious About Something?",
		ContactSubheadline:  "Explore our features or ask us anything — we're here to help.",
		ContactCTA:          "Ask a Question",
		DashboardGreeting:   "Let's Explore Together!",
		DashboardMotivation: "Take your time — there's so much to discover.",
		DashboardTip:        "Try different tones to see how AI adapts to your style.",
		TestimonialPriority: PriorityFeatures,
		NavCTA:              "Explore",
	},
	VisitorComparer: {
		Headline:            "The Smartest Way to Create Captions",
		Subheadline:         "5 unique tones. Instant generation. Direct sharing to Twitter & LinkedIn. See why Ad Atelier AI outperforms the competition.",
		CTAText:             "Compare Features",
		CTASecondaryText:    "View All Features",
		ValueProposition:    "Professional-quality captions without the professional price",
		UrgencyMessage:      "95% satisfaction rate from 10K+ users",
		SocialProof:         "Rated #1 by content creators",
		FeatureHighlight:    "More Features, Better Results",
		ContactHeadline:     "Want to Know More?",
		ContactSubheadline:  "Have specific questions about features or pricing? Let's talk.",
		ContactCTA:          "Get Details",
		DashboardGreeting:   "You Know What You Want",
		DashboardMotivation: "Let's show you why we're the best choice.",
		DashboardTip:        "Compare our 5 unique tones — each designed for different platforms.",
		TestimonialPriority: PriorityResults,
		NavCTA:              "See Features",
	},
	VisitorActionTaker: {
		Headline:            "Ready to Go Viral?",
		Subheadline:         "You know what you want. Get 3-5 perfect captions in seconds. Start creating now — no signup required.",
		CTAText:             "Start Creating Now",
		CTASecondaryText:    "Get Started Free",
		ValueProposition:    "From image to viral post in under 60 seconds",
		UrgencyMessage:      "🔥 127 creators are generating captions right now",
		SocialProof:         "50K+ captions generated this month",
		FeatureHighlight:    "Instant Results, Real Impact",
		ContactHeadline:     "Ready for Partnership?",
		ContactSubheadline:  "Let's discuss how we can work together to amplify your success.",
		ContactCTA:          "Start Conversation",
		DashboardGreeting:   "Let's Get to Work!",
		DashboardMotivation: "Your next viral post is just seconds away.",
		DashboardTip:        "Pro tip: Use 'bold' tone for maximum engagement.",
		TestimonialPriority: PriorityResults,
		NavCTA:              "Start Now",
	},
}

// SelectContent returns the content bundle for a visitor segment. The
// lookup is total: unknown segments fall back to the new-visitor bundle.
func SelectContent(t VisitorType) ContentBundle {
	if bundle, ok := contentByVisitorType[t]; ok {
		return bundle
	}
	return contentByVisitorType[VisitorNew]
}
