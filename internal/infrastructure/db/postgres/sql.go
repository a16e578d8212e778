package postgres

const internshipColumns = `id, company_name, job_description, url, created_at`

const insertInternshipSQL = `
INSERT INTO internships (id, company_name, job_description, url, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (url) DO NOTHING
RETURNING ` + internshipColumns

const getInternshipByURLSQL = `
SELECT ` + internshipColumns + ` FROM internships WHERE url = $1 LIMIT 1
`

const getInternshipSQL = `
SELECT ` + internshipColumns + ` FROM internships WHERE id = $1
`

const listInternshipsSQL = `
SELECT ` + internshipColumns + ` FROM internships ORDER BY created_at DESC
`

const listInternshipsByCompanySQL = `
SELECT ` + internshipColumns + ` FROM internships WHERE company_name ILIKE $1 ORDER BY created_at DESC
`

const updateInternshipSQL = `
UPDATE internships SET company_name=$2, job_description=$3, url=$4
WHERE id=$1
RETURNING ` + internshipColumns

const deleteInternshipSQL = `DELETE FROM internships WHERE id = $1`

const countInternshipsSQL = `SELECT COUNT(*) FROM internships`

const eventColumns = `
  id, title, date, time, location, description, details, host, price,
  registration_link, tags, ends_at, created_by, created_by_email,
  deleted_at, deleted_by, created_at, updated_at`

const insertEventSQL = `
INSERT INTO events (
  id, title, date, time, location, description, details, host, price,
  registration_link, tags, ends_at, created_by, created_by_email,
  created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
`

const getEventSQL = `
SELECT` + eventColumns + `
FROM events WHERE id = $1
`

const listLiveEventsSQL = `
SELECT` + eventColumns + `
FROM events
WHERE deleted_at IS NULL AND (ends_at IS NULL OR ends_at > $1)
ORDER BY created_at DESC
`

const listAllEventsSQL = `
SELECT` + eventColumns + `
FROM events
ORDER BY created_at DESC
`

const listEventsByOwnerSQL = `
SELECT` + eventColumns + `
FROM events
WHERE created_by = $1
ORDER BY created_at DESC
`

const updateEventSQL = `
UPDATE events SET
  title=$2, date=$3, time=$4, location=$5, description=$6, details=$7,
  host=$8, price=$9, registration_link=$10, tags=$11, ends_at=$12, updated_at=$13
WHERE id=$1 AND deleted_at IS NULL
`

const archiveEventSQL = `
UPDATE events SET deleted_at=$2, deleted_by=$3, updated_at=$2
WHERE id=$1 AND deleted_at IS NULL
`

const countEventsSQL = `SELECT COUNT(*) FROM events`

const fluencyQuestionColumns = `
  id, question, options, correct_answer, type, category, difficulty, is_active, created_at, updated_at`

const insertFluencyQuestionSQL = `
INSERT INTO fluency_questions (question, options, correct_answer, type, category, difficulty, is_active, created_at, updated_at)
VALUES ($1, $2::jsonb, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

const getFluencyQuestionSQL = `
SELECT` + fluencyQuestionColumns + `
FROM fluency_questions WHERE id = $1
`

const updateFluencyQuestionSQL = `
UPDATE fluency_questions SET
  question=$2, options=$3::jsonb, correct_answer=$4, type=$5, category=$6, difficulty=$7, updated_at=$8
WHERE id=$1 AND is_active
`

const deactivateFluencyQuestionSQL = `
UPDATE fluency_questions SET is_active=FALSE, updated_at=$2
WHERE id=$1 AND is_active
`

const listActiveFluencyQuestionsSQL = `
SELECT` + fluencyQuestionColumns + `
FROM fluency_questions
WHERE is_active AND ($1::text = '' OR category = $1)
ORDER BY id
`

const randomFluencyQuestionsSQL = `
SELECT` + fluencyQuestionColumns + `
FROM fluency_questions
WHERE is_active AND ($2::text = '' OR difficulty = $2)
ORDER BY RANDOM()
LIMIT $1
`

const fluencyQuestionsByIDsSQL = `
SELECT` + fluencyQuestionColumns + `
FROM fluency_questions
WHERE is_active AND id = ANY($1)
`

const countFluencyQuestionsSQL = `SELECT COUNT(*) FROM fluency_questions`

const fluencyResultColumns = `
  id, user_sub, score, total_questions, percentage, level, completed_at`

const insertFluencyResultSQL = `
INSERT INTO user_fluency_test_results (user_sub, score, total_questions, percentage, level, completed_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

const listFluencyResultsSQL = `
SELECT` + fluencyResultColumns + `
FROM user_fluency_test_results
WHERE user_sub = $1
ORDER BY completed_at DESC, id DESC
`

const latestFluencyResultSQL = listFluencyResultsSQL + `LIMIT 1
`

const userRoleSQL = `SELECT role FROM users WHERE auth0_id = $1 LIMIT 1`
