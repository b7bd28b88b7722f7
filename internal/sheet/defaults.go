package sheet

import "github.com/zhubert/tally/internal/errors"

// DefaultActiveID is the sheet shown when no active id was stored.
const DefaultActiveID = "all-orders"

func row(job, submitted, status, submitter, url, assigned, priority, due, value string) Row {
	return Row{
		Job: job, Submitted: submitted, Status: status, Submitter: submitter, URL: url,
		Assigned: assigned, Priority: priority, Due: due, Value: value,
	}
}

// padded appends empty rows up to DefaultRowCount.
func padded(rows ...Row) []Row {
	out := append([]Row{}, rows...)
	if n := DefaultRowCount - len(out); n > 0 {
		out = append(out, EmptyRows(n)...)
	}
	return out
}

func group(id, name, color string, keys ...string) HeaderGroup {
	return HeaderGroup{ID: id, Name: name, Color: color, ColumnSpans: ColumnRefs(keys)}
}

var (
	q3Rows = []Row{
		row("Launch social media campaign for product", "15-11-2024", "In-process", "Aisha Patel", "www.aishapatel.com", "Sophie Choudhury", "Medium", "20-11-2024", "6,200,000"),
		row("Update press kit for company redesign", "28-10-2024", "Need to start", "Irfan Khan", "www.irfankhan.com", "Tejas Pandey", "High", "30-10-2024", "3,500,000"),
		row("Finalize user testing feedback for app", "05-12-2024", "In-process", "Mark Johnson", "www.markjohnson.com", "Rachel Lee", "Medium", "10-12-2024", "4,750,000"),
		row("Design new features for the website", "10-01-2025", "Complete", "Emily Green", "www.emilygreen.com", "Tom Wright", "Low", "15-01-2025", "5,900,000"),
		row("Prepare financial report for Q4", "25-01-2025", "Blocked", "Jessica Brown", "www.jessicabrown.com", "Kevin Smith", "Low", "30-01-2025", "2,800,000"),
	}
	pendingRows = []Row{
		row("Review marketing campaign proposals", "12-11-2024", "Need to start", "Sarah Wilson", "www.sarahwilson.com", "David Chen", "High", "18-11-2024", "4,500,000"),
		row("Update customer feedback system", "20-11-2024", "In-process", "Michael Brown", "www.michaelbrown.com", "Lisa Zhang", "Medium", "25-11-2024", "3,200,000"),
		row("Implement new security protocols", "05-12-2024", "Blocked", "Alex Thompson", "www.alexthompson.com", "Ryan Miller", "High", "15-12-2024", "7,800,000"),
	}
	reviewedRows = []Row{
		row("Complete quarterly performance review", "01-11-2024", "Complete", "Jennifer Davis", "www.jenniferdavis.com", "Chris Anderson", "Medium", "10-11-2024", "5,600,000"),
		row("Finalize product launch strategy", "15-11-2024", "Complete", "Robert Garcia", "www.robertgarcia.com", "Maria Rodriguez", "High", "20-11-2024", "8,900,000"),
		row("Update company policies and procedures", "25-11-2024", "Complete", "Amanda White", "www.amandawhite.com", "James Taylor", "Low", "30-11-2024", "2,300,000"),
	}
	arrivedRows = []Row{
		row("Process new vendor applications", "10-12-2024", "In-process", "Daniel Lee", "www.danielle.com", "Sophia Kim", "Medium", "15-12-2024", "3,700,000"),
		row("Review incoming partnership proposals", "18-12-2024", "Need to start", "Emma Wilson", "www.emmawilson.com", "Carlos Martinez", "High", "25-12-2024", "6,400,000"),
		row("Analyze market research data", "22-12-2024", "In-process", "Nathan Clark", "www.nathanclark.com", "Olivia Johnson", "Medium", "30-12-2024", "4,100,000"),
	}
)

func q3Groups() []HeaderGroup {
	return []HeaderGroup{
		group("abc-header", "ABC", "#D2E0D4", KeyAssigned),
		group("answer-header", "Answer a question", "#DCCFFC", KeyPriority, KeyDue),
		group("extract-header", "Extract", "#FAC2AF", KeyValue),
	}
}

func build(id, name, title string, rows []Row, groups []HeaderGroup) Sheet {
	if groups == nil {
		groups = []HeaderGroup{}
	}
	return Sheet{
		ID:           id,
		Name:         name,
		Title:        title,
		Rows:         padded(rows...),
		ExtraColumns: []ExtraColumn{},
		HeaderGroups: groups,
	}
}

// Defaults returns the built-in sheets used when nothing usable is stored.
func Defaults() []Sheet {
	return []Sheet{
		build(DefaultActiveID, "All Orders", "Q3 Financial Overview", q3Rows, q3Groups()),
		build("pending", "Pending", "Pending Review Dashboard", pendingRows, nil),
		build("reviewed", "Reviewed", "Completed Reviews Summary", reviewedRows, nil),
		build("arrived", "Arrived", "New Arrivals Tracking", arrivedRows, nil),
	}
}

// Templates returns the built-in import templates.
func Templates() []Sheet {
	return []Sheet{
		build("template-1", "Q3 Financial Data", "Q3 Financial Overview", q3Rows[:3], q3Groups()),
		build("template-2", "Pending Reviews", "Pending Review Dashboard", pendingRows, []HeaderGroup{
			group("review-header", "Review", "#E3F2FD", KeyAssigned, KeyPriority),
			group("approve-header", "Approve", "#FFF8E1", KeyDue, KeyValue),
		}),
		build("template-3", "Completed Projects", "Completed Projects Summary", reviewedRows, []HeaderGroup{
			group("archive-header", "Archive", "#FCE4EC", KeyAssigned),
			group("export-header", "Export", "#E8F5E8", KeyPriority, KeyDue, KeyValue),
		}),
	}
}

// Template returns the built-in template with the given id.
func Template(id string) (Sheet, error) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, nil
		}
	}
	return Sheet{}, errors.TemplateNotFound(id)
}
