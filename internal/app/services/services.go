package services

// Services defined in this package:
// - PlannerService: eligibility, next-course ranking and elective suggestions
// - ScheduleService: multi-semester schedule generation with workload narration
//
// Both operate over the immutable catalog loaded at startup; all per-request
// state is local to the call.
