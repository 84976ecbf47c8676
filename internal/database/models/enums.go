package models

// BlockType defines the kinds of manually entered calendar blocks
type BlockType string

const (
	BlockTypeMeeting     BlockType = "meeting"
	BlockTypePersonal    BlockType = "personal"
	BlockTypeTraining    BlockType = "training"
	BlockTypeMaintenance BlockType = "maintenance"
)

// LeaveType defines the kinds of leave a worker can request
type LeaveType string

const (
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeParental LeaveType = "parental"
	LeaveTypeUnpaid   LeaveType = "unpaid"
)

// LeaveStatus defines the approval state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// BlockVisibility defines who can see a calendar block's details
type BlockVisibility string

const (
	BlockVisibilityPublic  BlockVisibility = "public"
	BlockVisibilityPrivate BlockVisibility = "private"
)

// WorkItemStatus defines the lifecycle state of a work item
type WorkItemStatus string

const (
	WorkItemStatusOpen       WorkItemStatus = "open"
	WorkItemStatusInProgress WorkItemStatus = "in_progress"
	WorkItemStatusDone       WorkItemStatus = "done"
	WorkItemStatusCancelled  WorkItemStatus = "cancelled"
)

// WorkItemPriority defines the urgency of a work item
type WorkItemPriority string

const (
	WorkItemPriorityLow    WorkItemPriority = "low"
	WorkItemPriorityMedium WorkItemPriority = "medium"
	WorkItemPriorityHigh   WorkItemPriority = "high"
	WorkItemPriorityUrgent WorkItemPriority = "urgent"
)

// IsValid checks if the BlockType is valid
func (b BlockType) IsValid() bool {
	switch b {
	case BlockTypeMeeting, BlockTypePersonal, BlockTypeTraining, BlockTypeMaintenance:
		return true
	}
	return false
}

// IsValid checks if the LeaveType is valid
func (l LeaveType) IsValid() bool {
	switch l {
	case LeaveTypeVacation, LeaveTypeSick, LeaveTypeParental, LeaveTypeUnpaid:
		return true
	}
	return false
}

// IsValid checks if the LeaveStatus is valid
func (l LeaveStatus) IsValid() bool {
	switch l {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the BlockVisibility is valid
func (v BlockVisibility) IsValid() bool {
	switch v {
	case BlockVisibilityPublic, BlockVisibilityPrivate:
		return true
	}
	return false
}

// IsValid checks if the WorkItemStatus is valid
func (s WorkItemStatus) IsValid() bool {
	switch s {
	case WorkItemStatusOpen, WorkItemStatusInProgress, WorkItemStatusDone, WorkItemStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the WorkItemPriority is valid
func (p WorkItemPriority) IsValid() bool {
	switch p {
	case WorkItemPriorityLow, WorkItemPriorityMedium, WorkItemPriorityHigh, WorkItemPriorityUrgent:
		return true
	}
	return false
}
