// Package pattern holds the bottleneck catalog and the trigger matcher.
//
// The catalog is process-wide read-only configuration: loaded once, never
// written afterward, safe for concurrent reads. Iteration order is explicit
// (Keys) because the matcher breaks score ties by catalog order.
package pattern

// Pattern is a static catalog entry describing one operational bottleneck.
type Pattern struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Triggers    []string `json:"triggers"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Questions   []string `json:"questions"`
	Why         string   `json:"why"`
}

// Catalog is an ordered, read-only set of bottleneck patterns.
type Catalog struct {
	keys     []string
	patterns map[string]Pattern
}

// NewCatalog builds a catalog preserving the order of the given patterns.
func NewCatalog(patterns []Pattern) *Catalog {
	c := &Catalog{
		keys:     make([]string, 0, len(patterns)),
		patterns: make(map[string]Pattern, len(patterns)),
	}
	for _, p := range patterns {
		if _, dup := c.patterns[p.Key]; dup {
			continue
		}
		c.keys = append(c.keys, p.Key)
		c.patterns[p.Key] = p
	}
	return c
}

// Keys returns the catalog iteration order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Get looks up a pattern by key.
func (c *Catalog) Get(key string) (Pattern, bool) {
	p, ok := c.patterns[key]
	return p, ok
}

// Len returns the number of patterns.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Questions returns the three validation questions for key, falling back to
// the generic set when the key is unknown. Never fails.
func (c *Catalog) Questions(key string) []string {
	if p, ok := c.patterns[key]; ok && len(p.Questions) > 0 {
		return p.Questions
	}
	return GenericQuestions()
}

// Why returns the "why this happens" explanation for key, falling back to
// the generic explanation when the key is unknown. Never fails.
func (c *Catalog) Why(key string) string {
	if p, ok := c.patterns[key]; ok && p.Why != "" {
		return p.Why
	}
	return genericWhy
}

// GenericQuestions returns the fallback validation questions used when a
// pattern key has no authored set.
func GenericQuestions() []string {
	return []string{
		"Where specifically does work pile up in your workflow?",
		"What percentage of your team's questions are things you've already answered?",
		"What would break first if you took an unplanned week off?",
	}
}

const genericWhy = "This pattern emerges from the natural evolution of a founder-led business that hasn't formalized its operational structure."

// Default returns the built-in bottleneck catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = NewCatalog([]Pattern{
	{
		Key:  "founder_single_point_of_failure",
		Name: "Founder Single Point of Failure",
		Triggers: []string{
			"Everything stops",
			"Revenue drops immediately",
			"All of it - I am the service",
			"Me personally - not enough of me",
		},
		Description: "Your personal availability is the revenue ceiling. When you're absent, business stops.",
		Symptoms: []string{
			"Revenue drops when you're not working",
			"Team can't operate without you present",
			"You are the service delivery mechanism",
		},
		Questions: []string{
			"If you were unexpectedly unavailable for a week, what would happen to revenue?",
			"Can your team deliver the same quality when you're not present?",
			"What percentage of client relationships require your personal involvement?",
		},
		Why: "This happens when you haven't built systems that allow the business to operate without you. Every revenue dollar is tied to your personal availability. The business hasn't transitioned from founder-delivered to team-delivered, so your presence is the constraint.",
	},
	{
		Key:  "tribal_knowledge",
		Name: "Tribal Knowledge",
		Triggers: []string{
			"It's all in my head",
			"They'd have to ask me everything",
			"No - it's in my head and changes every time",
		},
		Description: "All processes in founder head. No documentation exists. Team has no reference system.",
		Symptoms: []string{
			"Team interrupts you constantly with 'quick questions'",
			"New hires take 6+ months to be productive",
			"If you're sick, operations grind to a halt",
		},
		Questions: []string{
			"If you were hospitalized for 2 weeks, what critical information would die with you?",
			"How many times per day does someone interrupt you with a question they've asked before?",
			"What's the longest a new team member has taken to become fully productive?",
		},
		Why: "This happens when the business scales faster than documentation. In the early days, you could answer questions in real-time because the team was small. But as you added people, the \"interrupt volume\" exceeded your capacity to answer. Now you're trapped in a loop: you're too busy answering questions to document the answers, which generates more questions.",
	},
	{
		Key:  "documentation_bypassed",
		Name: "Documentation Bypassed",
		Triggers: []string{
			"I hand out yearly meeting paperwork",
			"I have notes everywhere for reference",
			"Rarely - they ask me instead",
			"No - they ignore it and ask me every time",
		},
		Description: "Documentation exists but team asks you instead. Format/accessibility mismatch, not knowledge gap.",
		Symptoms: []string{
			"Team ignores written docs and asks you directly",
			"You hand out materials but they're not referenced",
			"Format doesn't match how team actually learns",
		},
		Questions: []string{
			"When was the last time someone referenced your documentation without you reminding them?",
			"What format do team members actually use to learn (watching you, asking questions, trial and error)?",
			"If you reformatted your docs to match how your team actually learns, what would change?",
		},
		Why: "This happens when documentation format doesn't match how your team actually learns in the moment of need. A yearly meeting packet is a 'push' model (you give them info once), but your team needs a 'pull' model (searchable answers when they have questions). The format mismatch means they ignore docs and ask you directly.",
	},
	{
		Key:  "documentation_fragmentation",
		Name: "Documentation Fragmentation",
		Triggers: []string{
			"I have notes everywhere for reference",
			"It's mostly written somewhere, but some is in my head",
			"Sometimes - when reminded",
		},
		Description: "Information scattered across multiple places. Hard to find what you need when you need it.",
		Symptoms: []string{
			"Documentation exists but is disorganized",
			"Team needs reminders to check docs",
			"Multiple systems with overlapping info",
		},
		Questions: []string{
			"How many places does your team have to check to find a complete answer?",
			"What percentage of questions could be answered if docs were consolidated and searchable?",
			"What's preventing you from centralizing documentation right now?",
		},
		Why: "This happens from organic growth without consolidation. Each system was added to solve a point problem, but no one designed the information architecture. Now knowledge is scattered across Google Drive, Notion, email threads, and your head. Finding answers takes longer than asking you.",
	},
	{
		Key:  "documentation_culture_gap",
		Name: "Documentation Culture Gap",
		Triggers: []string{
			"Centralized system (Notion, Confluence, intranet)",
			"No - they ignore it and ask me every time",
			"Rarely - they ask me instead",
		},
		Description: "Good system exists but team hasn't adopted the habit. Cultural/training issue, not technical.",
		Symptoms: []string{
			"Centralized docs exist but unused",
			"Team bypasses system to ask you",
			"Adoption problem, not documentation problem",
		},
		Questions: []string{
			"What happens when you ask 'did you check the docs?' (honest answer)",
			"What would make your team's first instinct be to check docs instead of asking you?",
			"Is this a training issue, a trust issue, or a habit issue?",
		},
		Why: "This happens when you built the system but didn't build the habit. Documentation exists but the team's muscle memory is still 'ask the founder.' They need training, accountability, and time to rewire the pattern. This is a change management issue, not a technical one.",
	},
	{
		Key:  "decision_overload",
		Name: "Decision Overload",
		Triggers: []string{
			"10+ things",
			"Lost count - it's constant",
			"Fried - brain is mush",
			"Drained - lots of tiny decisions",
			"Non-stop - I never finish a thought",
			"Constantly - I'm the bottleneck",
		},
		Description: "Mental bandwidth exhaustion from decision volume. Always in reactive mode.",
		Symptoms: []string{
			"Decision backlog keeps growing",
			"Mentally drained by end of day",
			"Constant interruptions prevent deep work",
		},
		Questions: []string{
			"How many decisions do you make in a typical day?",
			"What percentage of those decisions could someone else make with proper context?",
			"What's the smallest decision you made today that you shouldn't have to make?",
		},
		Why: "This happens when you're playing too many roles simultaneously. Each decision requires a different cognitive mode, and the volume exceeds your mental bandwidth. You're always in 'shallow mode'—putting out fires but never building systems that would prevent them.",
	},
	{
		Key:  "approval_bottleneck",
		Name: "Approval Bottleneck",
		Triggers: []string{
			"Constantly - I'm the bottleneck",
			"Waiting on me to review",
			"Yes - and I hate it",
			"Yes - but I don't know how to fix it",
		},
		Description: "Your approval speed caps team throughput. Work sits waiting for you.",
		Symptoms: []string{
			"Work stops waiting for your review",
			"You know you're the bottleneck",
			"Team can't move without your sign-off",
		},
		Questions: []string{
			"How many rounds of revision does the average project go through before you approve it?",
			"What percentage of work gets sent back with corrections vs. approved on first submission?",
			"Could your team describe what 'great work' looks like without asking you?",
		},
		Why: "This happens because you have high standards (good) but you haven't externalized those standards into a system the team can follow (bad). Your 'quality bar' exists only in your head, forcing you to personally inspect every deliverable.",
	},
	{
		Key:  "capacity_constraint",
		Name: "Time/Slot Constraint",
		Triggers: []string{
			"Completely full, turning people away",
			"Overbooked - running behind constantly",
			"Actual service delivery capacity",
			"Not enough hours in the day",
		},
		Description: "Available hours cap revenue growth. Schedule is the limiting factor.",
		Symptoms: []string{
			"Fully booked but can't take more clients",
			"Running behind even when schedule is full",
			"Physical time is the constraint",
		},
		Questions: []string{
			"What happens when you try to take on one more client?",
			"If you added 10 hours to the week, would that solve the problem?",
			"Is the constraint your time, or the team's capacity?",
		},
		Why: "This happens when you've optimized everything except the fundamental constraint: available hours. You can't manufacture more time, so scaling requires either higher prices or delegation. The schedule is the ceiling.",
	},
	{
		Key:  "exception_overhead",
		Name: "Exception Overhead",
		Triggers: []string{
			"Over 50% - barely anything is standard anymore",
			"25-50%",
			"Constantly breaking down",
			"They work until they don't",
		},
		Description: "Edge cases consume disproportionate time. Standard process breaking under load.",
		Symptoms: []string{
			"Most work is 'exceptions' now",
			"Systems fail unpredictably",
			"Exception handling prevents scaling",
		},
		Questions: []string{
			"What percentage of projects actually follow your 'standard' process?",
			"How much time do exceptions consume vs. standard work?",
			"Are exceptions becoming the new normal?",
		},
		Why: "This happens when your 'standard' process was designed for ideal cases, but reality is messy. Edge cases accumulate until they become the majority. Your process can't adapt, so exceptions escalate to you.",
	},
	{
		Key:  "exception_handler",
		Name: "Exception Handler",
		Triggers: []string{
			"Constantly - I'm the exception handler",
			"Daily",
			"Almost all my time - team handles standard, I handle chaos",
		},
		Description: "You are the fallback for every edge case. Team escalates all special situations.",
		Symptoms: []string{
			"Team escalates constantly",
			"Your time spent on exceptions, not strategy",
			"Exception dependency blocks autonomy",
		},
		Questions: []string{
			"How many times per day does your team escalate 'special cases' to you?",
			"What would happen if you were unavailable when an exception occurred?",
			"Could someone else handle 80% of the exceptions with training?",
		},
		Why: "This happens when you're the only one with context to make judgment calls. The team handles routine work but escalates anything ambiguous. You become the exception processor, spending all your time on edge cases instead of strategy.",
	},
	{
		Key:  "identity_lock",
		Name: "Identity Lock",
		Triggers: []string{
			"Goes to zero",
			"They hired me - won't accept substitutes",
			"I AM the work - can't separate",
			"Drops significantly",
		},
		Description: "Business cannot run without your personal delivery. Revenue tied to your presence.",
		Symptoms: []string{
			"Revenue stops when you stop working",
			"Clients expect you specifically",
			"Identity merged with service delivery",
		},
		Questions: []string{
			"If you stopped doing client work for a month, what would happen to revenue?",
			"Do clients hire your company or do they hire you?",
			"What scares you most about stepping back from delivery?",
		},
		Why: "This happens when your personal brand IS the business. Clients hired you, not your company. Separating yourself from delivery feels like breaking a promise. But staying locked in delivery prevents the business from growing beyond your personal capacity.",
	},
	{
		Key:  "expertise_bottleneck",
		Name: "Expertise Bottleneck",
		Triggers: []string{
			"Quality won't match my standard",
			"I'll lose the expertise edge",
			"No - my expertise is unique",
		},
		Description: "Expertise not externalized into trainable system. Knowledge trapped in founder.",
		Symptoms: []string{
			"Can't delegate due to quality fears",
			"Expertise feels irreplaceable",
			"Team capability limited by your knowledge",
		},
		Questions: []string{
			"What parts of your expertise could be documented vs. taught?",
			"Has anyone on your team gotten to 70% of your capability?",
			"What would it take to make someone on your team 80% as good as you?",
		},
		Why: "This happens when your expertise is tacit knowledge—learned through experience, hard to articulate. You can do the work but can't teach it because you don't consciously know what you know. Delegation feels risky because quality depends on judgment you can't transfer.",
	},
	{
		Key:  "knowledge_transfer_gap",
		Name: "Knowledge Transfer Gap",
		Triggers: []string{
			"No - it's in my head and changes every time",
			"They could watch but it's all feel/intuition",
		},
		Description: "Process exists only in founder's head. No documented way to transfer knowledge.",
		Symptoms: []string{
			"Process is intuition-based",
			"Can't be replicated by watching",
			"Changes every time you do it",
		},
		Questions: []string{
			"If someone shadowed you for a month, could they replicate your process?",
			"How much of your work is 'feel' vs. 'system'?",
			"What would a documented version of your expertise look like?",
		},
		Why: "This happens when your process is intuition-based rather than system-based. It changes every time because you're responding to context, not following a protocol. Documentation can't capture 'feel,' so the knowledge stays locked in your head.",
	},
	{
		Key:  "constraint_collision",
		Name: "Constraint Collision",
		Triggers: []string{
			"Both equally - that's the problem",
			"Always - it's whack-a-mole",
			"Don't even have modes anymore - just chaos",
			"Constantly switching",
		},
		Description: "Multiple active constraints. Fixing one exposes another. Context switching overhead.",
		Symptoms: []string{
			"Can't tell which constraint is primary",
			"Constant mode switching",
			"Solving one problem reveals another",
		},
		Questions: []string{
			"When you fix one bottleneck, does another immediately appear?",
			"How many times per day do you switch between different types of work?",
			"Which constraint would you fix first if you could only fix one?",
		},
		Why: "This happens in hybrid businesses where multiple constraint types interact. You fix capacity and hit a decision bottleneck. You fix decisions and hit a systems problem. The constraints are coupled, creating whack-a-mole dynamics. Requires systems thinking, not point fixes.",
	},
	{
		Key:  "golden_handcuffs",
		Name: "Golden Handcuffs (Production Trap)",
		Triggers: []string{
			"Doing the actual service/work myself (instead of managing)",
			"New sales/bookings stop completely",
			"Owner (still doing the service/work myself)",
		},
		Description: "You're the highest-paid producer. Can't step back to manage because revenue depends on your output.",
		Symptoms: []string{
			"You're the top biller in your own firm",
			"Delegation means immediate revenue drop",
			"Trapped between 'maker' and 'manager' modes",
		},
		Questions: []string{
			"What percentage of total revenue comes from your personal billable work vs. the team's?",
			"If you spent 20 hours this week on business development instead of delivery, what would happen?",
			"What's your effective hourly rate when 'doing the work' vs. 'running the business'?",
		},
		Why: "This happens when your personal production rate is so high that delegation feels like a revenue loss. You're the best closer, designer, or practitioner. Stepping back means immediate cash flow hit. Trapped in a Catch-22: can't afford to stop doing the work, but doing the work prevents building the business that would free you.",
	},
})
