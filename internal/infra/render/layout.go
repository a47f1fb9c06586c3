package render

import "fmt"

// Both renderers print the same rows; only styling differs.

type infoRow struct {
	LeftLabel, LeftValue, RightLabel, RightValue string
}

type itemRow struct {
	No, Income, IncomeAmount, Deduction, DeductionAmount string
}

var footerLines = []string{
	"Anh/Chị vui lòng kiểm tra lại thông tin trên phiếu lương. Mọi thắc mắc vui lòng liên hệ Phòng HCNS trong vòng",
	"24 giờ (kể từ thời điểm nhận được thông báo này) để được giải quyết.",
	"Quá thời hạn trên, thông tin trên phiếu lương sẽ được xem là chính xác và không có khiếu nại. Trân trọng cảm ơn!",
}

const (
	labelNo          = "STT"
	labelIncome      = "Các Khoản Thu Nhập"
	labelDeductions  = "Các Khoản Trừ Vào Lương"
	labelTotalIncome = "Tổng Cộng Thu Nhập"
	labelTotalDeduct = "Tổng Cộng Khoản Trừ"
	labelNetPay      = "Tổng Số Tiền Lương Thực Nhận"
)

func (s *Slip) Title() string {
	return fmt.Sprintf("PHIẾU LƯƠNG THÁNG %d NĂM %d", s.Period.Month, s.Period.Year)
}

func (s *Slip) infoRows() []infoRow {
	return []infoRow{
		{"Họ tên:", s.Name, "Ngày công chuẩn:", ""},
		{"Lương thỏa thuận:", FormatAmount(s.AgreedSalary), "Ngày công thực tế:", ""},
		{"% Lương Thử việc:", "", "Nghỉ phép:", ""},
		{"Lương đóng:", FormatAmount(s.ContributionSalary), "Tổng giờ tăng ca:", ""},
		{"Số tài khoản:", s.AccountNumber, "Tên ngân hàng:", s.BankName},
	}
}

func (s *Slip) itemRows() []itemRow {
	return []itemRow{
		{"1", "Lương thực tế", FormatAmount(s.ActualSalary), "BHXH", FormatAmount(s.SocialInsurance)},
		{"2", "Phép năm", "", "Đoàn phí", FormatAmount(s.UnionFee)},
		{"3", "Lương tăng ca", "", "Thuế Thu Nhập Cá Nhân", FormatAmount(s.PersonalIncomeTax)},
		{"4", "Lương bổ sung", "", "Tạm Ứng", ""},
		{"5", "Giữ xe", "", "Tiền phạt", ""},
		{"6", "Công tác phí", "", "Khác", ""},
	}
}
