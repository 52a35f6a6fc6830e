package services

// Services defined in this package:
// - AuthService: authentication, registration and token refresh
// - CollegeService: partner college management
// - DriveService: recruitment drives and their round configuration
// - StudentService: drive rosters
// - BoardService: board derivation and drag-and-drop transitions
// - PanelService: interviewer panels
// - EvaluationService: asynchronous pre-screening jobs
