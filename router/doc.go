// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the habit tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{Store: st, Quotes: quotes, Mood: classifier, Validate: v})

# Endpoints

Health and greeting:

	GET /health      - Liveness
	GET /            - Greeting with a motivational quote
	GET /quotes/next - Next quote

Users:

	POST   /users                                  - Register user
	GET    /users                                  - List users
	GET    /users/{user_id}                        - User with habit names
	DELETE /users/{user_id}                        - Remove user and all data
	POST   /users/{user_id}/habits                 - Add habit
	DELETE /users/{user_id}/habits/{habit_name}    - Remove habit

Habits (optional ?user_id= picks the owner):

	GET  /habits                           - List habits
	GET  /habits/{habit_name}              - Habit detail
	POST /habits/{habit_name}/mark/{day}   - Mark day completed
	GET  /habits/{habit_name}/check/{day}  - Was day completed
	GET  /habits/{habit_name}/rate         - Completion rate
	GET  /habits/{habit_name}/chart        - PDF pie chart

Records:

	POST /habits/{habit_name}/records                    - Create record
	GET  /habits/{habit_name}/records                    - Records of a habit
	GET  /habits/{habit_name}/records/{record_id}        - Record with summary
	POST /habits/{habit_name}/records/{record_id}/mood   - Update mood
	POST /habits/{habit_name}/records/{record_id}/notes  - Update notes
	GET  /records                                        - All records
*/
package router
