package normalizer

import "github.com/clearline-health/eligo/internal/core/domain"

// Coverage flattens a copay/coinsurance response into service rows per
// network tier, benefit drill-downs, and vendor entries. Absent sections
// yield empty slices.
func Coverage(doc domain.Document) *domain.CoverageDetail {
	out := &domain.CoverageDetail{}

	individual := obj(obj(doc, "CopayCoInsuranceDetails"), "individual")

	inNet := obj(individual, "inNetwork")
	if found(inNet) {
		services := arr(inNet, "services")
		out.InNetwork = serviceLines(services)
		out.Benefits = serviceBenefits(services)
	}

	outNet := obj(individual, "outOfNetwork")
	if found(outNet) {
		out.OutOfNetwork = serviceLines(arr(outNet, "services"))
	}

	vendors := obj(doc, "vendorCoverageDetails")
	if found(vendors) {
		for _, raw := range arr(vendors, "vendorServices") {
			v, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			out.Vendors = append(out.Vendors, domain.VendorService{
				Text:       str(v, "text", na),
				VendorName: str(v, "vendorName", na),
				URL:        str(v, "url", na),
			})
		}
	}

	return out
}

// serviceLines flattens the services of one network tier, skipping entries
// without a positive found flag.
func serviceLines(services []any) []domain.ServiceLine {
	var lines []domain.ServiceLine
	for _, raw := range services {
		svc, ok := raw.(map[string]any)
		if !ok || !found(svc) {
			continue
		}
		lines = append(lines, domain.ServiceLine{
			Service:     serviceName(svc),
			Status:      str(svc, "status", na),
			Copay:       "$" + str(svc, "coPayAmount", "0") + str(svc, "coPayFrequency", ""),
			Coinsurance: str(svc, "coInsurancePercent", "0") + "%",
			Deductible:  serviceDeductible(svc),
		})
	}
	return lines
}

// serviceName prefers the display text over the service code.
func serviceName(svc map[string]any) string {
	if t := str(svc, "text", ""); t != "" {
		return t
	}
	if s := str(svc, "service", ""); s != "" {
		return s
	}
	return "Unknown"
}

// serviceDeductible joins a service's deductible messages with "; ".
func serviceDeductible(svc map[string]any) string {
	ded := obj(obj(svc, "messages"), "deductibles")
	if !found(ded) {
		return na
	}
	msgs := strList(arr(ded, "message"))
	if len(msgs) == 0 {
		return na
	}
	out := msgs[0]
	for _, m := range msgs[1:] {
		out += "; " + m
	}
	return out
}

// serviceBenefits collects the benefits-allowed drill-down for each service
// that carries one.
func serviceBenefits(services []any) []domain.ServiceBenefits {
	var out []domain.ServiceBenefits
	for _, raw := range services {
		svc, ok := raw.(map[string]any)
		if !ok || !found(svc) {
			continue
		}
		allowed := obj(obj(svc, "messages"), "benefitsAllowed")
		if !found(allowed) {
			continue
		}
		sb := domain.ServiceBenefits{
			Service:  serviceName(svc),
			Messages: strList(arr(allowed, "message")),
		}
		for _, lr := range arr(allowed, "limitationInfo") {
			lim, ok := lr.(map[string]any)
			if !ok {
				continue
			}
			sb.Limitations = append(sb.Limitations, domain.Limitation{
				Period:              str(lim, "lmtPeriod", na),
				Type:                str(lim, "lmtType", na),
				OccurrencePerPeriod: str(lim, "lmtOccurPerPeriod", na),
				DollarPerPeriod:     str(lim, "lmtDollarPerPeriod", na),
				Messages:            strList(arr(lim, "message")),
			})
		}
		out = append(out, sb)
	}
	return out
}
