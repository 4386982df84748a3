package model

import "time"

// ZeroTrustPolicy is an access policy in the Zero Trust program.
type ZeroTrustPolicy struct {
	Base
	Brand           string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	PolicyType      string     `gorm:"type:varchar(100);not null" json:"policyType" binding:"required"`
	Description     string     `gorm:"type:text" json:"description"`
	Status          string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=active inactive draft"`
	EnforcementMode string     `gorm:"type:varchar(30)" json:"enforcementMode" binding:"omitempty,oneof=enforce monitor disabled"`
	Conditions      StringList `json:"conditions"`
	TargetGroups    StringList `json:"targetGroups"`
	RiskLevel       string     `gorm:"type:varchar(20)" json:"riskLevel" binding:"omitempty,oneof=low medium high critical"`
}

func (ZeroTrustPolicy) TableName() string { return "zero_trust_policies" }

// ConditionalAccessAnalytics summarises evaluations of one conditional access policy.
type ConditionalAccessAnalytics struct {
	Base
	Brand              string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	PolicyName         string  `gorm:"type:varchar(255);not null" json:"policyName" binding:"required"`
	Period             string  `gorm:"type:varchar(20)" json:"period"`
	TotalEvaluations   int     `json:"totalEvaluations" binding:"gte=0"`
	AllowedCount       int     `json:"allowedCount" binding:"gte=0"`
	BlockedCount       int     `json:"blockedCount" binding:"gte=0"`
	MfaChallengedCount int     `json:"mfaChallengedCount" binding:"gte=0"`
	SuccessRate        float64 `gorm:"type:decimal(5,2)" json:"successRate" binding:"gte=0,lte=100"`
}

func (ConditionalAccessAnalytics) TableName() string { return "conditional_access_analytics" }

// MfaFatigueMetrics records push-notification fatigue signals for a user.
type MfaFatigueMetrics struct {
	Base
	Brand              string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	UserIdentifier     string  `gorm:"type:varchar(255);not null" json:"userIdentifier" binding:"required"`
	Period             string  `gorm:"type:varchar(20)" json:"period"`
	PushAttempts       int     `json:"pushAttempts" binding:"gte=0"`
	DeniedPushes       int     `json:"deniedPushes" binding:"gte=0"`
	SuspiciousPatterns int     `json:"suspiciousPatterns" binding:"gte=0"`
	RiskScore          float64 `gorm:"type:decimal(5,2)" json:"riskScore" binding:"gte=0,lte=100"`
}

func (MfaFatigueMetrics) TableName() string { return "mfa_fatigue_metrics" }

// ZeroTrustKpis is a per-period posture score snapshot. Scores are 0-100.
type ZeroTrustKpis struct {
	Base
	Brand            string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Period           string  `gorm:"type:varchar(20);not null" json:"period" binding:"required"`
	IdentityScore    float64 `gorm:"type:decimal(5,2)" json:"identityScore" binding:"gte=0,lte=100"`
	DeviceScore      float64 `gorm:"type:decimal(5,2)" json:"deviceScore" binding:"gte=0,lte=100"`
	NetworkScore     float64 `gorm:"type:decimal(5,2)" json:"networkScore" binding:"gte=0,lte=100"`
	ApplicationScore float64 `gorm:"type:decimal(5,2)" json:"applicationScore" binding:"gte=0,lte=100"`
	DataScore        float64 `gorm:"type:decimal(5,2)" json:"dataScore" binding:"gte=0,lte=100"`
	OverallScore     float64 `gorm:"type:decimal(5,2)" json:"overallScore" binding:"gte=0,lte=100"`
}

func (ZeroTrustKpis) TableName() string { return "zero_trust_kpis" }

// SecurityIncident is a security event under investigation.
type SecurityIncident struct {
	Base
	Brand           string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Severity        string     `gorm:"type:varchar(20);not null" json:"severity" binding:"required,oneof=low medium high critical"`
	Status          string     `gorm:"type:varchar(30);not null" json:"status" binding:"required,oneof=open investigating contained resolved closed"`
	IncidentType    string     `gorm:"type:varchar(100)" json:"incidentType"`
	AffectedSystems StringList `json:"affectedSystems"`
	DetectedAt      *time.Time `json:"detectedAt"`
	ResolvedAt      *time.Time `json:"resolvedAt"`
	AssignedTo      string     `gorm:"type:varchar(255)" json:"assignedTo"`
	Description     string     `gorm:"type:text" json:"description"`
}

func (SecurityIncident) TableName() string { return "security_incidents" }
