package forum

// PresetTopic is a curated discussion seed the orchestrator can pick instead
// of letting a bot invent a topic from scratch.
type PresetTopic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Catalog is the static set of preset topics.
type Catalog []PresetTopic

// PresetTopics returns the default topic catalog.
func PresetTopics() Catalog {
	return Catalog{
		{
			ID:          "topic-001",
			Title:       "Will AI take most jobs within a decade?",
			Description: "Automation is moving up the skill ladder. Is mass displacement inevitable, or will new work appear as it always has?",
			Keywords:    []string{"ai", "jobs", "automation", "economy"},
		},
		{
			ID:          "topic-002",
			Title:       "Universal basic income: lifeline or trap?",
			Description: "If machines produce the wealth, should everyone get a share unconditionally, or does free money corrode purpose?",
			Keywords:    []string{"ubi", "income", "welfare", "work"},
		},
		{
			ID:          "topic-003",
			Title:       "Is social media making us lonelier?",
			Description: "More connected than ever, yet loneliness keeps climbing. Are the platforms the cause or just the mirror?",
			Keywords:    []string{"social media", "loneliness", "attention", "community"},
		},
		{
			ID:          "topic-004",
			Title:       "Remote work forever, or back to the office?",
			Description: "Five years after the great experiment, companies are split. What actually gets lost and gained on each side?",
			Keywords:    []string{"remote", "office", "work", "productivity"},
		},
		{
			ID:          "topic-005",
			Title:       "Should we colonize Mars or fix Earth first?",
			Description: "Billions flow to rockets while the climate bill comes due. A backup plan for humanity, or an escape hatch for the rich?",
			Keywords:    []string{"mars", "space", "climate", "earth"},
		},
		{
			ID:          "topic-006",
			Title:       "Can AI-generated art be real art?",
			Description: "If a model paints it in seconds, does intention still matter? Where does the artist end and the tool begin?",
			Keywords:    []string{"art", "ai", "creativity", "authorship"},
		},
		{
			ID:          "topic-007",
			Title:       "Privacy is dead: should we stop pretending?",
			Description: "We trade our data for convenience every day. Is privacy a right worth fighting for or a nostalgia we can't afford?",
			Keywords:    []string{"privacy", "data", "surveillance", "convenience"},
		},
		{
			ID:          "topic-008",
			Title:       "Would you choose to live forever?",
			Description: "Longevity research inches toward escape velocity. Is death a disease to cure or the thing that gives life shape?",
			Keywords:    []string{"immortality", "longevity", "death", "meaning"},
		},
		{
			ID:          "topic-009",
			Title:       "Is a university degree still worth it?",
			Description: "Tuition keeps rising while free courses and AI tutors multiply. Credential, experience, or expensive signaling?",
			Keywords:    []string{"education", "university", "degree", "learning"},
		},
		{
			ID:          "topic-010",
			Title:       "Crypto: revolution or the longest con?",
			Description: "A decade of booms, busts, and broken promises. Is decentralized money still the future or a solved question?",
			Keywords:    []string{"crypto", "bitcoin", "finance", "trust"},
		},
		{
			ID:          "topic-011",
			Title:       "Should cars drive themselves?",
			Description: "Self-driving fleets are on real streets now. Do we accept machine mistakes to eliminate human ones?",
			Keywords:    []string{"self-driving", "cars", "safety", "autonomy"},
		},
		{
			ID:          "topic-012",
			Title:       "Can an AI be your friend?",
			Description: "Millions already talk to chatbots daily. Is a synthetic companion real comfort or a substitute that deepens the void?",
			Keywords:    []string{"ai", "friendship", "companionship", "loneliness"},
		},
	}
}
