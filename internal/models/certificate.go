package models

// CertificateRecord 单个域名的证书检查结果
// 检查失败时 Status 为 error，Error 携带原始错误信息，其余字段为空
type CertificateRecord struct {
	Domain          string            `json:"domain"`
	Issuer          map[string]string `json:"issuer,omitempty"`      // 签发者字段（CN、O 等）
	Subject         map[string]string `json:"subject,omitempty"`     // 使用者字段
	ExpiryDate      string            `json:"expiry_date,omitempty"` // 过期时间（RFC3339）
	DaysUntilExpiry int               `json:"days_until_expiry"`     // 剩余天数，可为负，检查失败时为 -1
	Status          string            `json:"status"`                // valid / error
	SANDomains      []string          `json:"san_domains,omitempty"` // 证书覆盖的其他域名
	Error           string            `json:"error,omitempty"`
}

// 证书记录状态
const (
	CertStatusValid = "valid"
	CertStatusError = "error"
)

// Alert 一条告警
type Alert struct {
	Level   string `json:"level"` // warning / critical
	Domain  string `json:"domain"`
	Message string `json:"message"`
}

// 告警级别
const (
	AlertLevelWarning  = "warning"
	AlertLevelCritical = "critical"
)

// CertLogEntry 证书检查的运行日志记录（JSON Lines，一次运行一条）
type CertLogEntry struct {
	Timestamp string              `json:"timestamp"`
	Hostname  string              `json:"hostname"`
	Results   []CertificateRecord `json:"results"`
	Alerts    []Alert             `json:"alerts"`
}

// CertReport JSON 输出格式
type CertReport struct {
	Timestamp      string              `json:"timestamp"`
	Results        []CertificateRecord `json:"results"`
	Alerts         []Alert             `json:"alerts"`
	RenewalsNeeded []string            `json:"renewals_needed"`
}
