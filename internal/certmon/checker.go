package certmon

import (
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/mental-lab/opswatch/internal/models"
)

// DefaultCheckTimeout 证书检查的连接超时
const DefaultCheckTimeout = 10 * time.Second

// Checker 证书检查器
// 对目标地址做一次 TLS 握手并提取证书信息，任何失败都只体现在返回记录上
type Checker struct {
	Timeout time.Duration
	RootCAs *x509.CertPool // 为空时使用系统根证书（用于测试注入）
}

// NewChecker 创建使用默认超时和系统信任链的证书检查器
func NewChecker() *Checker {
	return &Checker{Timeout: DefaultCheckTimeout}
}

// Check 检查单个域名的证书，失败时返回 error 状态的记录，不返回错误
func (c *Checker) Check(domain string, port int) models.CertificateRecord {
	addr := net.JoinHostPort(domain, strconv.Itoa(port))
	dialer := &net.Dialer{Timeout: c.Timeout}

	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
		ServerName: domain,
		RootCAs:    c.RootCAs,
	})
	if err != nil {
		return models.CertificateRecord{
			Domain:          domain,
			Status:          models.CertStatusError,
			Error:           err.Error(),
			DaysUntilExpiry: -1,
		}
	}
	defer conn.Close()

	// 握手已完成，第一张证书即服务器证书
	cert := conn.ConnectionState().PeerCertificates[0]

	return models.CertificateRecord{
		Domain:          domain,
		Issuer:          nameToMap(cert.Issuer),
		Subject:         nameToMap(cert.Subject),
		ExpiryDate:      cert.NotAfter.Format(time.RFC3339),
		DaysUntilExpiry: daysUntilExpiry(cert.NotAfter, time.Now()),
		Status:          models.CertStatusValid,
		SANDomains:      cert.DNSNames,
	}
}

// daysUntilExpiry 计算剩余整天数，向下取整，已过期时为负数
func daysUntilExpiry(notAfter, now time.Time) int {
	return int(math.Floor(notAfter.Sub(now).Hours() / 24))
}

// nameToMap 将证书主体字段转为键值映射
func nameToMap(name pkix.Name) map[string]string {
	m := make(map[string]string)

	if name.CommonName != "" {
		m["commonName"] = name.CommonName
	}

	set := func(key string, values []string) {
		if len(values) > 0 {
			m[key] = strings.Join(values, ", ")
		}
	}
	set("organization", name.Organization)
	set("organizationalUnit", name.OrganizationalUnit)
	set("country", name.Country)
	set("province", name.Province)
	set("locality", name.Locality)

	return m
}
