// domain/models/note_template.go

package models

// NoteTemplate - โครงร่าง markdown สำเร็จรูปสำหรับเริ่มเขียนบันทึก
type NoteTemplate struct {
	Name     string       `json:"name"`
	Category NoteCategory `json:"category"`
	Content  string       `json:"content"`
}

// NoteTemplates - รายการ template ทั้งหมด (read-only)
var NoteTemplates = []NoteTemplate{
	{Name: "Bug Report", Category: NoteCategoryBug, Content: bugReportTemplate},
	{Name: "Test Case", Category: NoteCategoryTask, Content: testCaseTemplate},
	{Name: "Automation Note", Category: NoteCategoryAutomation, Content: automationNoteTemplate},
	{Name: "Quick Note", Category: NoteCategoryGeneral, Content: quickNoteTemplate},
	{Name: "Improvement Idea", Category: NoteCategoryGeneral, Content: improvementIdeaTemplate},
	{Name: "Workflow", Category: NoteCategoryGeneral, Content: workflowTemplate},
}

const bugReportTemplate = `### 🐛 Bug Summary
**ID:** [BUG-001]
**Priority:** 🔴 Critical / 🟡 Medium / 🟢 Low
**Impact:** [User cannot log in / risk of data loss]

### 🌍 Environment
- **Device:**
- **OS:**
- **Browser:**
- **Version:**

### 👣 Steps to Reproduce
1. [Step 1]
2. [Step 2]
3. [Step 3]

### ✅ Expected Result
[User logs in and is redirected to the home page]

### ❌ Actual Result
[Page reloads without any error message]

### 📝 Console Logs
` + "```" + `
Error: Unexpected token...
` + "```" + `
`

const testCaseTemplate = `### 🧪 Test Case
**ID:** [TC-001]
**Goal:** [Verify the login flow]

### 📋 Preconditions
- Application is running
- Database connection is active

### 👣 Test Steps
1. Open the application
2. Click "Sign In"
3. Enter a valid username and password
4. Press "Submit"

### 📊 Test Data
| Parameter | Value |
|-----------|-------|
| Email | user@test.com |
| Password | pass123 |

### ✅ Expected Result
- User is redirected to the dashboard
- A welcome message is shown
`

const automationNoteTemplate = `### 🤖 Automation Scenario
**Framework:** [Selenium / Cypress / Playwright]
**Environment:** [Local / Staging / Prod]

### 📜 Scenario
[User adds an item to the cart and proceeds to checkout]

### 🎯 Selectors Used
- Login Button: ` + "`#btn-login`" + `
- Cart Icon: ` + "`.cart-icon[data-id=\"123\"]`" + `

### ⚠️ Known Issues / Flakiness
- [Occasional timeout errors]
- [Pop-up sometimes loads late]

### 🛠️ Maintenance Notes
- Selectors need updating
- Wait time should be increased
`

const quickNoteTemplate = `### ⚡ Quick Note
- **Where:** [Header menu]
- **Issue:** [Logo shifts on mobile]
- **Urgency:** High
- **Quick Fix:** [Set CSS padding to 10px]
`

const improvementIdeaTemplate = `### 💡 Idea / Suggestion
**Topic:** [New dashboard design]

### 🚧 Current State / Problem
[The dashboard is cluttered on mobile and slow to load]

### ✨ Proposed Solution
- Switch to a widget layout
- Use lazy loading

### 💎 Value / Benefit
- Better user experience
- 40% faster page load
`

const workflowTemplate = `### 🔄 Workflow
**Process:** [Account cancellation]
**Actor:** [End user]

### ➡️ Flow Steps
1. **Start:** User opens the "Settings" page.
2. **Action:** Click "Delete Account".
3. **System:** Shows an "Are you sure?" modal.
4. **Decision:**
   - *Yes:* Call the deletion API -> log out -> redirect home.
   - *No:* Close the modal.
5. **End:** User is removed from the system.
`
