// Package breakdown matches a free-text task to a hand-written step plan and
// adjusts that plan for nearby deadlines.
package breakdown

import "github.com/alexanderramin/focuscoach/internal/domain"

type template struct {
	key       string
	breakdown domain.TaskBreakdown
}

// templates are tried in this order. Reordering them changes which plan a
// task resolves to.
var templates = []template{
	{
		key: "prepare quarterly report",
		breakdown: domain.TaskBreakdown{
			Steps: []domain.Step{
				{Description: "Set up your document and add the title", EstimatedTime: "5", Tip: "Start with 'Q[1-4] [Year] Quarterly Report' - don't overthink it!"},
				{Description: "Gather all necessary data and documents", EstimatedTime: "15", Tip: "Use a timer and take breaks every 15 minutes"},
				{Description: "Create an outline with main sections", EstimatedTime: "10", Tip: "Use bullet points: Executive Summary, Key Metrics, Challenges, Next Steps"},
				{Description: "Write the Executive Summary (2-3 paragraphs)", EstimatedTime: "20", Tip: "Start with key points, details can come later"},
				{Description: "Add your key metrics section with numbers", EstimatedTime: "15", Tip: "Use bullet points and simple tables"},
				{Description: "Write about challenges and solutions", EstimatedTime: "15", Tip: "Be honest and specific - what went wrong and how you fixed it"},
				{Description: "Add charts and graphs to visualize data", EstimatedTime: "20", Tip: "Use simple charts - bar graphs and pie charts work well"},
				{Description: "Write the 'Next Quarter Goals' section", EstimatedTime: "10", Tip: "Keep it simple - 3-5 specific goals"},
				{Description: "Review and edit the final report", EstimatedTime: "15", Tip: "Read it out loud to catch any issues"},
				{Description: "Add your signature and date", EstimatedTime: "2", Tip: "You're almost done! Just add your name and today's date"},
			},
			FocusTechniques: []string{"Pomodoro technique (25 min work, 5 min break)", "Body doubling with a colleague", "Use a focus app like Forest"},
			Accommodations:  []string{"Use noise-cancelling headphones", "Set up a comfortable workspace", "Take sensory breaks when needed", "Ask for help if you get stuck"},
			SensoryTips:     []string{"Use natural lighting if possible", "Try instrumental music for focus", "Have fidget tools nearby", "Take movement breaks every hour"},
			Encouragement:   "You've got this! Remember, progress not perfection. Every small step counts!",
		},
	},
	{
		key: "clean my room",
		breakdown: domain.TaskBreakdown{
			Steps: []domain.Step{
				{Description: "Start by making your bed", EstimatedTime: "3", Tip: "This gives you an instant sense of accomplishment!"},
				{Description: "Pick up and put away 5 items", EstimatedTime: "10", Tip: "Start small - even 5 items is progress"},
				{Description: "Sort clothes into clean/dirty piles", EstimatedTime: "15", Tip: "Use a timer and take breaks"},
				{Description: "Put dirty clothes in hamper, hang clean ones", EstimatedTime: "10", Tip: "Don't worry about folding perfectly - just get them off the floor"},
				{Description: "Organize one surface (desk, dresser, etc.)", EstimatedTime: "20", Tip: "Focus on one area at a time"},
				{Description: "Take a 5-minute break", EstimatedTime: "5", Tip: "Hydrate and stretch"},
				{Description: "Tackle one more area", EstimatedTime: "15", Tip: "Celebrate what you've accomplished so far"},
				{Description: "Do a final sweep - put away any remaining items", EstimatedTime: "10", Tip: "You're almost done! Just a few more items to go"},
			},
			FocusTechniques: []string{"Chunking technique", "Body doubling with a friend", "Use a timer for each step"},
			Accommodations:  []string{"Play music you enjoy", "Use a comfortable outfit", "Take breaks when needed", "Ask for help if you get overwhelmed"},
			SensoryTips:     []string{"Open windows for fresh air", "Use gloves if textures bother you", "Take movement breaks", "Use a comfortable pace"},
			Encouragement:   "Every small step makes a difference! You're doing great!",
		},
	},
	{
		key: "study for exam",
		breakdown: domain.TaskBreakdown{
			Steps: []domain.Step{
				{Description: "Gather all your study materials (books, notes, laptop)", EstimatedTime: "5", Tip: "Set up your study space first - it helps your brain get ready"},
				{Description: "Review the study guide or syllabus", EstimatedTime: "15", Tip: "Don't try to memorize everything at once"},
				{Description: "Create a study schedule for the week", EstimatedTime: "10", Tip: "Break it into manageable chunks"},
				{Description: "Start with the easiest topic first", EstimatedTime: "20", Tip: "Build confidence by starting with what you know"},
				{Description: "Take a 5-minute break", EstimatedTime: "5", Tip: "Move around and hydrate"},
				{Description: "Study one challenging topic for 25 minutes", EstimatedTime: "25", Tip: "Use the Pomodoro technique"},
				{Description: "Take another 5-minute break", EstimatedTime: "5", Tip: "Stretch and have a snack"},
				{Description: "Review what you just studied", EstimatedTime: "10", Tip: "Summarize in your own words"},
				{Description: "Create flashcards or summary notes", EstimatedTime: "15", Tip: "Writing helps you remember better"},
				{Description: "Test yourself on what you studied", EstimatedTime: "10", Tip: "Quiz yourself - it's the best way to see what you know"},
			},
			FocusTechniques: []string{"Pomodoro technique", "Active recall methods", "Study with a friend"},
			Accommodations:  []string{"Use noise-cancelling headphones", "Find a quiet study space", "Take regular breaks", "Use study apps if helpful"},
			SensoryTips:     []string{"Good lighting is important", "Comfortable seating", "Have water and snacks nearby", "Take movement breaks"},
			Encouragement:   "You're building knowledge step by step. You've got this!",
		},
	},
	{
		key: "write a blog post",
		breakdown: domain.TaskBreakdown{
			Steps: []domain.Step{
				{Description: "Open your document and add a working title", EstimatedTime: "3", Tip: "Don't worry about the perfect title - you can change it later"},
				{Description: "Brainstorm 5-7 key points you want to cover", EstimatedTime: "10", Tip: "Use bullet points - don't overthink it"},
				{Description: "Write the introduction paragraph", EstimatedTime: "15", Tip: "Start with a hook - why should people read this?"},
				{Description: "Write the first main point", EstimatedTime: "20", Tip: "Just start writing - you can edit later"},
				{Description: "Take a 5-minute break", EstimatedTime: "5", Tip: "Step away and stretch"},
				{Description: "Write the second main point", EstimatedTime: "20", Tip: "Keep the momentum going"},
				{Description: "Add the third main point", EstimatedTime: "20", Tip: "You're getting into the flow now"},
				{Description: "Write a conclusion paragraph", EstimatedTime: "10", Tip: "Summarize your main points and add a call to action"},
				{Description: "Read through and edit for clarity", EstimatedTime: "15", Tip: "Read it out loud to catch any awkward phrases"},
				{Description: "Add a final title and publish", EstimatedTime: "5", Tip: "You did it! Time to share your thoughts with the world"},
			},
			FocusTechniques: []string{"Pomodoro technique", "Free writing", "Body doubling with a writing partner"},
			Accommodations:  []string{"Use a distraction-free writing app", "Set up a comfortable writing space", "Have water and snacks nearby", "Take breaks when you get stuck"},
			SensoryTips:     []string{"Good lighting is important", "Comfortable seating", "Background music if helpful", "Take movement breaks"},
			Encouragement:   "Your voice matters! Every word you write is progress.",
		},
	},
	{
		key: "plan a presentation",
		breakdown: domain.TaskBreakdown{
			Steps: []domain.Step{
				{Description: "Open a new document and write your topic at the top", EstimatedTime: "2", Tip: "Keep it simple - just the main topic"},
				{Description: "Write down your main message in one sentence", EstimatedTime: "5", Tip: "What do you want people to remember?"},
				{Description: "Create an outline with 3-5 main points", EstimatedTime: "15", Tip: "Use bullet points - keep it simple"},
				{Description: "Write a brief introduction", EstimatedTime: "10", Tip: "Tell them what you're going to tell them"},
				{Description: "Develop your first main point", EstimatedTime: "20", Tip: "Add examples or stories to make it interesting"},
				{Description: "Take a 5-minute break", EstimatedTime: "5", Tip: "Step away and think about your audience"},
				{Description: "Develop your second main point", EstimatedTime: "20", Tip: "Keep it relevant to your main message"},
				{Description: "Add your third main point", EstimatedTime: "20", Tip: "You're building a strong case"},
				{Description: "Write a conclusion that summarizes your points", EstimatedTime: "10", Tip: "End with a clear takeaway"},
				{Description: "Practice your presentation out loud", EstimatedTime: "15", Tip: "Practice makes perfect - you've got this!"},
			},
			FocusTechniques: []string{"Time blocking", "Practice with a friend", "Record yourself practicing"},
			Accommodations:  []string{"Use presentation software you're comfortable with", "Practice in a quiet space", "Have notes as backup", "Ask for feedback from trusted people"},
			SensoryTips:     []string{"Practice in the actual space if possible", "Wear comfortable clothes", "Have water nearby", "Take deep breaths before starting"},
			Encouragement:   "You have valuable insights to share. Your audience is lucky to hear from you!",
		},
	},
}

// Keys lists the catalog phrases in match order.
func Keys() []string {
	keys := make([]string, len(templates))
	for i, t := range templates {
		keys[i] = t.key
	}
	return keys
}

// Template returns a copy of the plan stored under key.
func Template(key string) (domain.TaskBreakdown, bool) {
	for _, t := range templates {
		if t.key == key {
			return t.breakdown.Clone(), true
		}
	}
	return domain.TaskBreakdown{}, false
}

// generic is the fallback plan. The task text is embedded in the first step.
func generic(task string) domain.TaskBreakdown {
	return domain.TaskBreakdown{
		Steps: []domain.Step{
			{Description: "Start with: " + task, EstimatedTime: "15", Tip: "Break it into smaller pieces"},
			{Description: "Take a 5-minute break", EstimatedTime: "5", Tip: "Rest and recharge"},
			{Description: "Continue with the next part", EstimatedTime: "15", Tip: "Keep going at your own pace"},
			{Description: "Review what you've accomplished", EstimatedTime: "10", Tip: "Celebrate your progress"},
		},
		FocusTechniques: []string{"Pomodoro technique", "Body doubling", "Time blocking"},
		Accommodations:  []string{"Use timers", "Take frequent breaks", "Ask for help when needed"},
		SensoryTips:     []string{"Comfortable lighting", "Noise-cancelling headphones", "Fidget tools"},
		Encouragement:   "Remember: progress, not perfection. You're doing great!",
	}
}
