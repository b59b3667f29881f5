// internal/decisionnotice/activity/descriptors.go
package activity

import "fmt"

type answerSpec struct {
	letter string
	points int
	label  string
}

func question(number int, key, label string, g Grouping, specs ...answerSpec) Question {
	q := Question{Key: key, Label: label, Number: number, Grouping: g}
	for _, s := range specs {
		q.Answers = append(q.Answers, Answer{
			Key:    fmt.Sprintf("%s%d%s", key, number, s.letter),
			Label:  s.label,
			Letter: s.letter,
			Points: s.points,
		})
	}
	return q
}

// workCapabilityQuestions is the limited capability for work assessment
// (ESA Schedule 2 and UC Schedule 6 share the same descriptors). Letters,
// points and wording follow Schedule 2 to the Employment and Support
// Allowance Regulations 2008 as amended in 2011, which Schedule 6 to the
// Universal Credit Regulations 2013 repeats.
func workCapabilityQuestions() []Question {
	return []Question{
		question(1, "mobilisingUnaided", "Mobilising unaided by another person with or without a walking stick, manual wheelchair or other aid if such aid is normally, or could reasonably be, worn or used.", Physical,
			answerSpec{"a", 15, "Cannot, unaided by another person, either: (i) mobilise more than 50 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 50 metres within a reasonable timescale because of significant discomfort or exhaustion."},
			answerSpec{"b", 9, "Cannot, unaided by another person, mount or descend two steps even with the support of a handrail."},
			answerSpec{"c", 9, "Cannot, unaided by another person, either: (i) mobilise more than 100 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 100 metres within a reasonable timescale because of significant discomfort or exhaustion."},
			answerSpec{"d", 6, "Cannot, unaided by another person, either: (i) mobilise more than 200 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 200 metres within a reasonable timescale because of significant discomfort or exhaustion."},
			answerSpec{"e", 0, "None of the above applies."},
		),
		question(2, "standingAndSitting", "Standing and sitting.", Physical,
			answerSpec{"a", 15, "Cannot move between one seated position and another seated position which are located next to one another without receiving physical assistance from another person."},
			answerSpec{"b", 9, "Cannot, for the majority of the time, remain at a work station: (i) standing unassisted by another person (even if free to move around); (ii) sitting (even in an adjustable chair); or (iii) a combination of paragraphs (i) and (ii), for more than 30 minutes, before needing to move away in order to avoid significant discomfort or exhaustion."},
			answerSpec{"c", 6, "Cannot, for the majority of the time, remain at a work station standing or sitting for more than an hour before needing to move away in order to avoid significant discomfort or exhaustion."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(3, "reaching", "Reaching.", Physical,
			answerSpec{"a", 15, "Cannot raise either arm as if to put something in the top pocket of a coat or jacket."},
			answerSpec{"b", 9, "Cannot raise either arm to top of head as if to put on a hat."},
			answerSpec{"c", 6, "Cannot raise either arm above head height as if to reach for something."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(4, "pickingUpAndMoving", "Picking up and moving or transferring by the use of the upper body and arms.", Physical,
			answerSpec{"a", 15, "Cannot pick up and move a 0.5 litre carton full of liquid."},
			answerSpec{"b", 9, "Cannot pick up and move a one litre carton full of liquid."},
			answerSpec{"c", 6, "Cannot transfer a light but bulky object such as an empty cardboard box."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(5, "manualDexterity", "Manual dexterity.", Physical,
			answerSpec{"a", 15, "Cannot press a button (such as a telephone keypad) with either hand or cannot turn the pages of a book with either hand."},
			answerSpec{"b", 15, "Cannot pick up a £1 coin or equivalent with either hand."},
			answerSpec{"c", 15, "Cannot use a pen or pencil to make a meaningful mark with either hand."},
			answerSpec{"d", 9, "Cannot single-handedly use a suitable keyboard or mouse."},
			answerSpec{"e", 6, "Cannot single-handedly use a conventional keyboard or mouse."},
			answerSpec{"f", 0, "None of the above applies."},
		),
		question(6, "makingSelfUnderstood", "Making self understood through speaking, writing, typing, or other means which are normally, or could reasonably be, used, unaided by another person.", Physical,
			answerSpec{"a", 15, "Cannot convey a simple message, such as the presence of a hazard."},
			answerSpec{"b", 15, "Has significant difficulty conveying a simple message to strangers."},
			answerSpec{"c", 6, "Has some difficulty conveying a simple message to strangers."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(7, "communication", "Understanding communication by: (i) verbal means (such as hearing or lip reading) alone; (ii) non-verbal means (such as reading 16 point print or Braille) alone; or (iii) a combination of (i) and (ii), using any aid that is normally, or could reasonably be, used, unaided by another person.", Physical,
			answerSpec{"a", 15, "Cannot understand a simple message, such as the location of a fire escape, due to sensory impairment."},
			answerSpec{"b", 15, "Has significant difficulty understanding a simple message from a stranger due to sensory impairment."},
			answerSpec{"c", 6, "Has some difficulty understanding a simple message from a stranger due to sensory impairment."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(8, "navigation", "Navigation and maintaining safety using a guide dog or other aid if either or both are normally, or could reasonably be, used.", Physical,
			answerSpec{"a", 15, "Unable to navigate around familiar surroundings, without being accompanied by another person, due to sensory impairment."},
			answerSpec{"b", 15, "Cannot safely complete a potentially hazardous task such as crossing the road, without being accompanied by another person, due to sensory impairment."},
			answerSpec{"c", 9, "Unable to navigate around unfamiliar surroundings, without being accompanied by another person, due to sensory impairment."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(9, "lossOfControl", "Absence or loss of control whilst conscious leading to extensive evacuation of the bowel and/or bladder, other than enuresis (bed-wetting), despite the wearing or use of any aids or adaptations which are normally, or could reasonably be, worn or used.", Physical,
			answerSpec{"a", 15, "At least once a month experiences: (i) loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder; or (ii) substantial leakage of the contents of a collecting device, sufficient to require cleaning and a change in clothing."},
			answerSpec{"b", 15, "The majority of the time is at risk of loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder, sufficient to require cleaning and a change in clothing, if not able to reach a toilet quickly."},
			answerSpec{"c", 0, "None of the above applies."},
		),
		question(10, "consciousness", "Consciousness during waking moments.", Physical,
			answerSpec{"a", 15, "At least once a week, has an involuntary episode of lost or altered consciousness resulting in significantly disrupted awareness or concentration."},
			answerSpec{"b", 6, "At least once a month, has an involuntary episode of lost or altered consciousness resulting in significantly disrupted awareness or concentration."},
			answerSpec{"c", 0, "None of the above applies."},
		),
		question(11, "learningTasks", "Learning tasks.", Mental,
			answerSpec{"a", 15, "Cannot learn how to complete a simple task, such as setting an alarm clock."},
			answerSpec{"b", 9, "Cannot learn anything beyond a simple task, such as setting an alarm clock."},
			answerSpec{"c", 6, "Cannot learn anything beyond a moderately complex task, such as the steps involved in operating a washing machine to clean clothes."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(12, "awarenessOfHazards", "Awareness of everyday hazards (such as boiling water or sharp objects).", Mental,
			answerSpec{"a", 15, "Reduced awareness of everyday hazards leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they require supervision for the majority of the time to maintain safety."},
			answerSpec{"b", 9, "Reduced awareness of everyday hazards leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they frequently require supervision to maintain safety."},
			answerSpec{"c", 6, "Reduced awareness of everyday hazards leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they occasionally require supervision to maintain safety."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(13, "personalAction", "Initiating and completing personal action (which means planning, organisation, problem solving, prioritising or switching tasks).", Mental,
			answerSpec{"a", 15, "Cannot, due to impaired mental function, reliably initiate or complete at least 2 sequential personal actions."},
			answerSpec{"b", 9, "Cannot, due to impaired mental function, reliably initiate or complete at least 2 personal actions for the majority of the time."},
			answerSpec{"c", 6, "Frequently cannot, due to impaired mental function, reliably initiate or complete at least 2 personal actions."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(14, "copingWithChange", "Coping with change.", Mental,
			answerSpec{"a", 15, "Cannot cope with any change to the extent that day to day life cannot be managed."},
			answerSpec{"b", 9, "Cannot cope with minor planned change (such as a pre-arranged change to the routine time scheduled for a lunch break), to the extent that overall, day to day life is made significantly more difficult."},
			answerSpec{"c", 6, "Cannot cope with minor unplanned change (such as the timing of an appointment on the day it is due to occur), to the extent that overall, day to day life is made significantly more difficult."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(15, "gettingAbout", "Getting about.", Mental,
			answerSpec{"a", 15, "Cannot get to any place outside the claimant's home with which the claimant is familiar."},
			answerSpec{"b", 9, "Is unable to get to a specified place with which the claimant is familiar, without being accompanied by another person."},
			answerSpec{"c", 6, "Is unable to get to a specified place with which the claimant is unfamiliar without being accompanied by another person."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(16, "socialEngagement", "Coping with social engagement due to cognitive impairment or mental disorder.", Mental,
			answerSpec{"a", 15, "Engagement in social contact is always precluded due to difficulty relating to others or significant distress experienced by the individual."},
			answerSpec{"b", 9, "Engagement in social contact with someone unfamiliar to the claimant is always precluded due to difficulty relating to others or significant distress experienced by the individual."},
			answerSpec{"c", 6, "Engagement in social contact with someone unfamiliar to the claimant is not possible for the majority of the time due to difficulty relating to others or significant distress experienced by the individual."},
			answerSpec{"d", 0, "None of the above applies."},
		),
		question(17, "appropriatenessOfBehaviour", "Appropriateness of behaviour with other people, due to cognitive impairment or mental disorder.", Mental,
			answerSpec{"a", 15, "Has, on a daily basis, uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
			answerSpec{"b", 15, "Frequently has uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
			answerSpec{"c", 9, "Occasionally has uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
			answerSpec{"d", 0, "None of the above applies."},
		),
	}
}

// scheduleActivities is the limited capability for work-related activity
// list (ESA Schedule 3 and UC Schedule 7); only the key prefix differs.
func scheduleActivities(prefix string) []ScheduleActivity {
	entries := []struct {
		suffix string
		label  string
	}{
		{"MobilisingUnaided", "Mobilising unaided by another person with or without a walking stick, manual wheelchair or other aid if such aid is normally, or could reasonably be, worn or used."},
		{"TransferringPositions", "Transferring from one seated position to another."},
		{"Reaching", "Reaching."},
		{"PickingUpAndMoving", "Picking up and moving or transferring by the use of the upper body and arms (excluding standing, sitting, bending or kneeling and all other activities specified in this Schedule)."},
		{"ManualDexterity", "Manual dexterity."},
		{"MakingSelfUnderstood", "Making self understood through speaking, writing, typing, or other means which are normally, or could reasonably be, used, unaided by another person."},
		{"Communication", "Understanding communication by verbal or non-verbal means, using any aid that is normally, or could reasonably be, used, unaided by another person."},
		{"LearningTasks", "Learning tasks."},
		{"AwarenessOfHazard", "Awareness of hazard."},
		{"PersonalAction", "Initiating and completing personal action (which means planning, organisation, problem solving, prioritising or switching tasks)."},
		{"CopingWithChange", "Coping with change."},
		{"SocialEngagement", "Coping with social engagement, due to cognitive impairment or mental disorder."},
		{"AppropriatenessOfBehaviour", "Appropriateness of behaviour with other people, due to cognitive impairment or mental disorder."},
		{"ConveyingFoodOrDrink", "Conveying food or drink to the mouth."},
		{"ChewingOrSwallowing", "Chewing or swallowing food or drink."},
	}

	out := make([]ScheduleActivity, 0, len(entries))
	for i, e := range entries {
		out = append(out, ScheduleActivity{
			Key:    prefix + e.suffix,
			Label:  e.label,
			Number: i + 1,
		})
	}
	return out
}
