package domain

// EquipmentTypes returns the catalog of recognized equipment types.
func EquipmentTypes() []string {
	return []string{
		"Laptop", "Desktop", "Server", "Router", "Switch", "Firewall",
		"UPS", "Generator", "Printer", "Phone", "Tablet", "Monitor",
		"Access Point", "NAS", "SAN", "Load Balancer",
	}
}

// SeedSnapshot builds the example dataset used when no persisted snapshot is
// available. It models a seven-department organization with enough records
// in every collection to exercise the dashboard, risk, and report flows.
func SeedSnapshot() Snapshot {
	return Snapshot{
		Company: Company{
			Name:        "Acme Corporation",
			Address:     "100 Main Street",
			City:        "Springfield",
			State:       "IL",
			Zip:         "62704",
			Phone:       "(217) 555-0100",
			Industry:    "Technology",
			Employees:   250,
			FiscalStart: "January",
		},
		Users: []User{
			{ID: "u1", FirstName: "Alex", LastName: "Morgan", Email: "alex.morgan@acme.com", Phone: "(217) 555-0101", Title: "BCP Director", Role: RoleAdmin, DepartmentID: "d1", Active: true},
			{ID: "u2", FirstName: "Jordan", LastName: "Lee", Email: "jordan.lee@acme.com", Phone: "(217) 555-0102", Title: "Program Manager", Role: RoleProgramManager, DepartmentID: "d1", Active: true},
			{ID: "u3", FirstName: "Casey", LastName: "Rivera", Email: "casey.rivera@acme.com", Phone: "(217) 555-0103", Title: "IT Manager", Role: RoleCrisisTeam, DepartmentID: "d2", Active: true},
			{ID: "u4", FirstName: "Taylor", LastName: "Chen", Email: "taylor.chen@acme.com", Phone: "(217) 555-0104", Title: "HR Director", Role: RoleCrisisTeam, DepartmentID: "d3", Active: true},
			{ID: "u5", FirstName: "Morgan", LastName: "Patel", Email: "morgan.patel@acme.com", Phone: "(217) 555-0105", Title: "Finance Manager", Role: RoleEmployee, DepartmentID: "d4", Active: true},
			{ID: "u6", FirstName: "Riley", LastName: "Brooks", Email: "riley.brooks@acme.com", Phone: "(217) 555-0106", Title: "Operations Manager", Role: RoleCrisisTeam, DepartmentID: "d5", Active: true},
			{ID: "u7", FirstName: "Sam", LastName: "Okafor", Email: "sam.okafor@acme.com", Phone: "(217) 555-0107", Title: "Support Lead", Role: RoleEmployee, DepartmentID: "d7", Active: true},
		},
		Departments: []Department{
			{
				ID: "d1", Name: "Executive", LeadID: "u1", Headcount: 12,
				Processes: []Process{
					{ID: "p1", Name: "Strategic Planning", Priority: "Critical", RTO: RTOSameDay, RPO: "1 Hour", MTD: "4 Hours", Strategy: "Failover to DR site", Status: "Active", Dependencies: []string{"Email System", "ERP"}, Workaround: "Manual coordination via phone tree"},
					{ID: "p2", Name: "Board Communications", Priority: "High", RTO: RTOOneDay, RPO: "4 Hours", MTD: "24 Hours", Strategy: "Backup email + phone", Status: "Active", Dependencies: []string{"Email System"}, Workaround: "Direct phone calls"},
				},
			},
			{
				ID: "d2", Name: "Information Technology", LeadID: "u3", Headcount: 45,
				Processes: []Process{
					{ID: "p3", Name: "Network Operations", Priority: "Critical", RTO: RTOSameDay, RPO: "15 Minutes", MTD: "2 Hours", Strategy: "Redundant infrastructure", Status: "Active", Dependencies: []string{"Core Switches", "Firewalls"}, Workaround: "Cellular hotspots"},
					{ID: "p4", Name: "Help Desk", Priority: "Medium", RTO: RTOOneDay, RPO: "1 Hour", MTD: "8 Hours", Strategy: "Remote support tools", Status: "Active", Dependencies: []string{"Ticketing System"}, Workaround: "Phone-based support"},
					{ID: "p5", Name: "Database Administration", Priority: "Critical", RTO: RTOSameDay, RPO: "5 Minutes", MTD: "1 Hour", Strategy: "Real-time replication", Status: "Active", Dependencies: []string{"Primary DB", "Backup Systems"}, Workaround: "Read-only replicas"},
				},
			},
			{
				ID: "d3", Name: "Human Resources", LeadID: "u4", Headcount: 18,
				Processes: []Process{
					{ID: "p6", Name: "Payroll Processing", Priority: "Critical", RTO: RTOOneDay, RPO: "1 Hour", MTD: "48 Hours", Strategy: "Cloud payroll backup", Status: "Active", Dependencies: []string{"HRIS", "Banking Portal"}, Workaround: "Manual check processing"},
					{ID: "p7", Name: "Employee Records", Priority: "Medium", RTO: RTOShort, RPO: "24 Hours", MTD: "5 Days", Strategy: "Cloud backup", Status: "Active", Dependencies: []string{"HRIS"}, Workaround: "Paper records"},
				},
			},
			{
				ID: "d4", Name: "Finance", LeadID: "u5", Headcount: 22,
				Processes: []Process{
					{ID: "p8", Name: "Accounts Payable", Priority: "High", RTO: RTOOneDay, RPO: "4 Hours", MTD: "24 Hours", Strategy: "ERP cloud failover", Status: "Active", Dependencies: []string{"ERP", "Banking Portal"}, Workaround: "Manual check writing"},
					{ID: "p9", Name: "Financial Reporting", Priority: "Medium", RTO: RTOShort, RPO: "24 Hours", MTD: "5 Days", Strategy: "Spreadsheet backup", Status: "Active", Dependencies: []string{"ERP", "BI Tools"}, Workaround: "Manual spreadsheets"},
				},
			},
			{
				ID: "d5", Name: "Operations", LeadID: "u6", Headcount: 60,
				Processes: []Process{
					{ID: "p10", Name: "Order Fulfillment", Priority: "Critical", RTO: RTOSameDay, RPO: "1 Hour", MTD: "8 Hours", Strategy: "Shift to DR warehouse", Status: "Active", Dependencies: []string{"ERP", "WMS"}, Workaround: "Manual pick lists"},
					{ID: "p11", Name: "Inventory Management", Priority: "High", RTO: RTOOneDay, RPO: "4 Hours", MTD: "24 Hours", Strategy: "Cloud WMS replica", Status: "Active", Dependencies: []string{"WMS"}, Workaround: "Spreadsheet counts"},
				},
			},
			{
				ID: "d6", Name: "Sales & Marketing", LeadID: "u2", Headcount: 30,
				Processes: []Process{
					{ID: "p12", Name: "Order Entry", Priority: "High", RTO: RTOOneDay, RPO: "4 Hours", MTD: "24 Hours", Strategy: "CRM cloud failover", Status: "Active", Dependencies: []string{"CRM"}, Workaround: "Phone and paper orders"},
					{ID: "p13", Name: "Campaign Management", Priority: "Low", RTO: RTOExtended, RPO: "24 Hours", MTD: "10 Days", Strategy: "Defer until restoration", Status: "Active", Dependencies: []string{"CRM", "Email System"}, Workaround: "Pause campaigns"},
				},
			},
			{
				ID: "d7", Name: "Customer Support", LeadID: "u7", Headcount: 40,
				Processes: []Process{
					{ID: "p14", Name: "Call Center Operations", Priority: "Critical", RTO: RTOSameDay, RPO: "1 Hour", MTD: "4 Hours", Strategy: "Reroute to DR call center", Status: "Active", Dependencies: []string{"Phone System", "CRM"}, Workaround: "Mobile phone bridge"},
					{ID: "p15", Name: "Ticket Resolution", Priority: "Medium", RTO: RTOShort, RPO: "4 Hours", MTD: "5 Days", Strategy: "Cloud ticketing backup", Status: "Active", Dependencies: []string{"Ticketing System"}, Workaround: "Shared mailbox triage"},
				},
			},
		},
		Technologies: []Technology{
			{ID: "t1", Name: "Microsoft 365", Tier: "Tier 1", Type: "SaaS", RPO: "15 Minutes", VendorID: "v1", DepartmentID: "d2", Status: "Active"},
			{ID: "t2", Name: "SAP ERP", Tier: "Tier 1", Type: "On-Premise", RPO: "1 Hour", VendorID: "v2", DepartmentID: "d2", Status: "Active"},
			{ID: "t3", Name: "Cisco Network", Tier: "Tier 1", Type: "Hardware", RPO: "N/A", VendorID: "v3", DepartmentID: "d2", Status: "Active"},
			{ID: "t4", Name: "Workday HRIS", Tier: "Tier 2", Type: "SaaS", RPO: "4 Hours", VendorID: "v4", DepartmentID: "d3", Status: "Active"},
			{ID: "t5", Name: "Salesforce CRM", Tier: "Tier 2", Type: "SaaS", RPO: "1 Hour", VendorID: "v5", DepartmentID: "d4", Status: "Active"},
			{ID: "t6", Name: "AWS Cloud", Tier: "Tier 1", Type: "IaaS", RPO: "5 Minutes", VendorID: "v6", DepartmentID: "d2", Status: "Active"},
		},
		Vendors: []Vendor{
			{ID: "v1", Name: "Microsoft", Critical: true, SLA: "99.9%", Contact: "Enterprise Support", Phone: "(800) 642-7676", Email: "support@microsoft.com", ContractEnd: "2025-12-31"},
			{ID: "v2", Name: "SAP", Critical: true, SLA: "99.5%", Contact: "Premium Support", Phone: "(800) 872-1727", Email: "support@sap.com", ContractEnd: "2026-06-30"},
			{ID: "v3", Name: "Cisco", Critical: true, SLA: "99.9%", Contact: "TAC", Phone: "(800) 553-2447", Email: "tac@cisco.com", ContractEnd: "2026-03-31"},
			{ID: "v4", Name: "Workday", Critical: false, SLA: "99.5%", Contact: "Customer Care", Phone: "(877) 967-5329", Email: "support@workday.com", ContractEnd: "2025-09-30"},
			{ID: "v5", Name: "Salesforce", Critical: false, SLA: "99.9%", Contact: "Success Manager", Phone: "(800) 667-6389", Email: "support@salesforce.com", ContractEnd: "2026-01-15"},
			{ID: "v6", Name: "Amazon Web Services", Critical: true, SLA: "99.99%", Contact: "Enterprise Support", Phone: "(206) 266-4064", Email: "aws-support@amazon.com", ContractEnd: "2026-12-31"},
		},
		Threats: []Threat{
			{ID: "th1", Name: "Ransomware Attack", Category: "Cyber", Likelihood: 4, Impact: 5, RPN: 20, Trend: "up"},
			{ID: "th2", Name: "Power Outage", Category: "Infrastructure", Likelihood: 3, Impact: 4, RPN: 12, Trend: "stable"},
			{ID: "th3", Name: "Flood", Category: "Natural", Likelihood: 2, Impact: 5, RPN: 10, Trend: "up"},
			{ID: "th4", Name: "Pandemic", Category: "Health", Likelihood: 3, Impact: 4, RPN: 12, Trend: "down"},
			{ID: "th5", Name: "Supply Chain Disruption", Category: "Operational", Likelihood: 3, Impact: 3, RPN: 9, Trend: "up"},
			{ID: "th6", Name: "Data Breach", Category: "Cyber", Likelihood: 4, Impact: 5, RPN: 20, Trend: "up"},
			{ID: "th7", Name: "Earthquake", Category: "Natural", Likelihood: 1, Impact: 5, RPN: 5, Trend: "stable"},
			{ID: "th8", Name: "Key Person Loss", Category: "Personnel", Likelihood: 3, Impact: 3, RPN: 9, Trend: "stable"},
		},
		Assessments: []Assessment{
			{ID: "a1", Name: "Annual BCP Review", Status: "Complete", Likelihood: 2, Impact: 3, RPN: 6, Mitigation: "Regular updates, quarterly reviews", Date: "2025-01-15", ReviewerID: "u1"},
			{ID: "a2", Name: "IT DR Assessment", Status: "In Progress", Likelihood: 3, Impact: 4, RPN: 12, Mitigation: "Redundant systems, backup testing", Date: "2025-03-01", ReviewerID: "u3"},
			{ID: "a3", Name: "Vendor Risk Review", Status: "Pending", Likelihood: 2, Impact: 3, RPN: 6, Mitigation: "Dual-vendor strategy", Date: "2025-06-01", ReviewerID: "u2"},
		},
		BIA: []BIA{
			{ID: "b1", DepartmentID: "d1", ProcessID: "p1", FinancialImpact: 500000, OperationalImpact: "Critical", ReputationalImpact: "High", RegulatoryImpact: "Medium", Notes: "Board-level visibility"},
			{ID: "b2", DepartmentID: "d2", ProcessID: "p3", FinancialImpact: 1000000, OperationalImpact: "Critical", ReputationalImpact: "Critical", RegulatoryImpact: "High", Notes: "All operations depend on network"},
			{ID: "b3", DepartmentID: "d3", ProcessID: "p6", FinancialImpact: 250000, OperationalImpact: "High", ReputationalImpact: "Medium", RegulatoryImpact: "Critical", Notes: "Legal compliance for payroll"},
			{ID: "b4", DepartmentID: "d4", ProcessID: "p8", FinancialImpact: 750000, OperationalImpact: "High", ReputationalImpact: "High", RegulatoryImpact: "Medium", Notes: "Vendor payment obligations"},
		},
		Locations: []Location{
			{ID: "l1", Name: "HQ - Springfield", Address: "100 Main St, Springfield, IL 62704", Type: "Primary", Capacity: 200, Status: "Active"},
			{ID: "l2", Name: "DR Site - Chicago", Address: "500 Lake Shore Dr, Chicago, IL 60611", Type: "DR", Capacity: 100, Status: "Active"},
			{ID: "l3", Name: "Branch - Peoria", Address: "200 Adams St, Peoria, IL 61602", Type: "Branch", Capacity: 50, Status: "Active"},
		},
		Groups: []Group{
			{ID: "g1", Name: "Crisis Management Team", Description: "Senior leadership crisis response", MemberIDs: []string{"u1", "u2", "u3", "u4"}},
			{ID: "g2", Name: "IT Recovery Team", Description: "Technical recovery operations", MemberIDs: []string{"u3"}},
			{ID: "g3", Name: "Communications Team", Description: "Internal and external communications", MemberIDs: []string{"u1", "u4"}},
		},
		Documents: Documents{
			Folders: []DocumentFolder{
				{ID: "f1", Name: "Plans", Files: []DocFile{
					{ID: "doc1", Name: "Business Continuity Plan 2025.pdf", Size: "2.4 MB", Date: "2025-01-15", AuthorID: "u1"},
					{ID: "doc2", Name: "IT Disaster Recovery Plan.pdf", Size: "1.8 MB", Date: "2025-02-01", AuthorID: "u3"},
				}},
				{ID: "f2", Name: "Procedures", Files: []DocFile{
					{ID: "doc3", Name: "Incident Response SOP.pdf", Size: "890 KB", Date: "2025-01-20", AuthorID: "u2"},
					{ID: "doc4", Name: "Emergency Evacuation Guide.pdf", Size: "1.1 MB", Date: "2024-11-15", AuthorID: "u4"},
				}},
				{ID: "f3", Name: "Templates", Files: []DocFile{
					{ID: "doc5", Name: "BIA Template.xlsx", Size: "340 KB", Date: "2024-12-01", AuthorID: "u2"},
				}},
			},
		},
		Training: []Training{
			{ID: "tr1", Name: "BCP Awareness Training", Type: "Online", Frequency: "Annual", Last: "2025-01-10", Next: "2026-01-10", Status: "Current", AttendeeIDs: []string{"u1", "u2", "u3", "u4", "u5"}},
			{ID: "tr2", Name: "Tabletop Exercise - Ransomware", Type: "Exercise", Frequency: "Semi-Annual", Last: "2025-02-15", Next: "2025-08-15", Status: "Current", AttendeeIDs: []string{"u1", "u2", "u3"}},
			{ID: "tr3", Name: "IT DR Failover Test", Type: "Technical", Frequency: "Quarterly", Last: "2025-03-01", Next: "2025-06-01", Status: "Upcoming", AttendeeIDs: []string{"u3"}},
		},
		CriticalDates: []CriticalDate{
			{ID: "cd1", Name: "Annual Plan Review", Date: "2025-06-15", Department: "Executive", Type: "Review"},
			{ID: "cd2", Name: "DR Test Window", Date: "2025-07-01", Department: "IT", Type: "Test"},
			{ID: "cd3", Name: "Vendor Contract Renewal - SAP", Date: "2026-06-30", Department: "IT", Type: "Contract"},
			{ID: "cd4", Name: "Insurance Policy Renewal", Date: "2025-09-01", Department: "Finance", Type: "Contract"},
			{ID: "cd5", Name: "Regulatory Audit", Date: "2025-10-15", Department: "Executive", Type: "Compliance"},
			{ID: "cd6", Name: "Tabletop Exercise", Date: "2025-08-15", Department: "Executive", Type: "Exercise"},
		},
		Tasks: TaskPhases{
			Early: []string{
				"Activate phone tree for all department leads",
				"Notify Crisis Management Team",
				"Secure all facilities and restrict access",
				"Begin situation assessment and documentation",
				"Contact insurance provider",
			},
			Immediate: []string{
				"Establish command center (primary or alternate)",
				"Deploy IT recovery team to assess systems",
				"Activate vendor emergency support contracts",
				"Begin employee accountability check",
				"Initiate communications plan",
				"Assess damage and document findings",
				"Activate DR site if primary is compromised",
			},
			ShortTerm: []string{
				"Restore Tier 1 systems and validate",
				"Resume critical business processes",
				"Implement temporary workarounds for non-critical functions",
				"Continue stakeholder communications",
				"Begin detailed damage assessment",
				"Coordinate with vendors on restoration timelines",
			},
			LongTerm: []string{
				"Restore all remaining systems",
				"Return to normal operations",
				"Conduct post-incident review",
				"Update BCP based on lessons learned",
				"File insurance claims with documentation",
				"Debrief all teams and document improvements",
			},
		},
		Issues: []Issue{
			{ID: "i1", Title: "DR site generator needs maintenance", Status: "Open", Priority: "High", DepartmentID: "d2", AssigneeID: "u3", Created: "2025-02-01", Description: "Annual generator maintenance overdue by 2 months"},
			{ID: "i2", Title: "Missing BIA for Marketing dept", Status: "Open", Priority: "Medium", DepartmentID: "d1", AssigneeID: "u2", Created: "2025-01-15", Description: "Marketing department BIA has not been completed"},
			{ID: "i3", Title: "Outdated emergency contact list", Status: "Resolved", Priority: "Low", DepartmentID: "d3", AssigneeID: "u4", Created: "2024-12-01", Description: "Contact list updated with new hires"},
		},
		Incidents: []Incident{
			{ID: "inc1", Title: "Power Outage - Springfield HQ", Date: "2025-01-05", Severity: "Medium", Status: "Closed", LeadID: "u3", Description: "Utility power failure lasting 4 hours. Generator activated successfully. No data loss.", Resolution: "UPS and generator performed as expected. Added monitoring alerts."},
			{ID: "inc2", Title: "Phishing Campaign Detected", Date: "2025-02-10", Severity: "High", Status: "Closed", LeadID: "u3", Description: "Targeted phishing emails sent to finance team. 2 users clicked links.", Resolution: "Credentials reset, additional training deployed, email filters updated."},
		},
		Equipment:       []Equipment{},
		CustomQuestions: []CustomQuestion{},
	}
}
